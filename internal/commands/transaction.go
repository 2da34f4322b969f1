package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"financio/internal/core"
	"financio/internal/ledger"
)

func newTxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Log and list transactions",
	}
	cmd.AddCommand(newTxLogCommand())
	cmd.AddCommand(newTxListCommand())
	return cmd
}

func newTxLogCommand() *cobra.Command {
	var (
		kind        string
		category    string
		description string
		date        string
		account     string
	)

	cmd := &cobra.Command{
		Use:   "log <amount>",
		Short: "Log an income or expense transaction",
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
			d, err := parseDateFlag(date)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}

			tx, err := store.LogTransaction(ctx, ledger.TransactionParams{
				Kind:        k,
				Amount:      amount,
				Category:    category,
				Description: description,
				Date:        d,
				AccountName: account,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s of %s in %q on %s\n", tx.Kind, tx.Amount.Display(), tx.Category, tx.Date)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "expense", "transaction type: income or expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&account, "account", "a", "", "account to apply the amount to")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newTxListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			txs := store.RecentTransactions(limit)
			if len(txs) == 0 {
				fmt.Println("No transactions.")
				return nil
			}
			for _, tx := range txs {
				line := fmt.Sprintf("%s  %-7s %10s  %-15s", tx.Date, tx.Kind, tx.Amount.Display(), tx.Category)
				if tx.Description != "" {
					line += "  " + tx.Description
				}
				if tx.AccountName != "" {
					line += fmt.Sprintf("  [%s]", tx.AccountName)
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n transactions (0 = all)")
	return cmd
}
