package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"financio/internal/core"
)

func newIncomeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Set or show periodic income",
	}
	cmd.AddCommand(newIncomeSetCommand())
	cmd.AddCommand(newIncomeShowCommand())
	return cmd
}

func newIncomeSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the periodic income used by budget status",
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
			if err := store.SetIncome(ctx, amount); err != nil {
				return err
			}
			fmt.Printf("Income set to %s\n", amount.Display())
			return nil
		},
	}
}

func newIncomeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured periodic income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Printf("Income: %s\n", store.Income().Display())
			return nil
		},
	}
}
