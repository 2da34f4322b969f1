package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"financio/internal/core"
	"financio/internal/ledger"
)

func newRecurringCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring transaction rules",
	}
	cmd.AddCommand(newRecurringAddCommand())
	cmd.AddCommand(newRecurringListCommand())
	return cmd
}

func newRecurringAddCommand() *cobra.Command {
	var (
		kind        string
		category    string
		description string
		frequency   string
		start       string
		account     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a recurring rule due from its start date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			amount, err := core.ParseMoney(args[0])
			if err != nil {
				return err
			}
			k, err := core.ParseTransactionKind(kind)
			if err != nil {
				return err
			}
			freq, err := core.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			startDate, err := parseDateFlag(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}

			rule, err := store.AddRecurringRule(ctx, ledger.RuleParams{
				Kind:        k,
				Amount:      amount,
				Category:    category,
				Description: description,
				Frequency:   freq,
				StartDate:   startDate,
				AccountName: account,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added %s recurring %s of %s, next due %s\n", rule.Frequency, rule.Kind, rule.Amount.Display(), rule.NextDue)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "expense", "transaction type: income or expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "monthly", "daily, weekly, monthly or yearly")
	cmd.Flags().StringVar(&start, "start", "", "first due date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&account, "account", "a", "", "account to apply occurrences to")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newRecurringListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring rules by next due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			rules := store.UpcomingRules(0)
			if len(rules) == 0 {
				fmt.Println("No recurring rules.")
				return nil
			}
			for _, rule := range rules {
				fmt.Printf("%s  %-8s %-7s %10s  %s\n", rule.NextDue, rule.Frequency, rule.Kind, rule.Amount.Display(), rule.Category)
			}
			return nil
		},
	}
}
