package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"financio/internal/core"
	"financio/internal/ledger"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newAccountAddCommand())
	cmd.AddCommand(newAccountListCommand())
	return cmd
}

func newAccountAddCommand() *cobra.Command {
	var (
		accountType string
		balance     string
		limit       string
		principal   string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account (bank, credit_card or loan)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			typ, err := core.ParseAccountType(accountType)
			if err != nil {
				return err
			}
			bal, err := core.ParseMoney(balance)
			if err != nil {
				return fmt.Errorf("--balance: %w", err)
			}

			p := ledger.AccountParams{
				Name:    args[0],
				Type:    typ,
				Balance: bal,
			}
			if limit != "" {
				m, err := core.ParseMoney(limit)
				if err != nil {
					return fmt.Errorf("--limit: %w", err)
				}
				p.Limit = &m
			}
			if principal != "" {
				m, err := core.ParseMoney(principal)
				if err != nil {
					return fmt.Errorf("--principal: %w", err)
				}
				p.Principal = &m
			}

			acc, err := store.AddAccount(ctx, p)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s account %q with balance %s\n", acc.Type, args[0], acc.Balance.Display())
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountType, "type", "t", "bank", "account type: bank, credit_card or loan")
	cmd.Flags().StringVarP(&balance, "balance", "b", "0", "starting balance (negative for debt)")
	cmd.Flags().StringVar(&limit, "limit", "", "credit limit (credit cards)")
	cmd.Flags().StringVar(&principal, "principal", "", "original principal (loans)")
	return cmd
}

func newAccountListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			accounts := store.Accounts()
			if len(accounts) == 0 {
				fmt.Println("No accounts.")
				return nil
			}
			names := make([]string, 0, len(accounts))
			for name := range accounts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				acc := accounts[name]
				fmt.Printf("%-20s %-12s %s\n", name, acc.Type, acc.Balance.Display())
			}
			return nil
		},
	}
}
