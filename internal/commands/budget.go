package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"financio/internal/core"
)

func newBudgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Set budgets and compare them against spending",
	}
	cmd.AddCommand(newBudgetSetCommand())
	cmd.AddCommand(newBudgetCompareCommand())
	cmd.AddCommand(newBudgetStatusCommand())
	return cmd
}

func newBudgetSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the monthly budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			amount, err := core.ParseMoney(args[1])
			if err != nil {
				return err
			}
			if err := store.SetBudget(ctx, args[0], amount); err != nil {
				return err
			}
			fmt.Printf("Budget for %q set to %s\n", args[0], amount.Display())
			return nil
		},
	}
}

func newBudgetCompareCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare budgeted amounts against actual spend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			start, end, err := parsePeriodFlags(from, to)
			if err != nil {
				return err
			}
			cmp := store.CompareBudget(start, end)
			if len(cmp.Lines) == 0 {
				fmt.Println("Nothing budgeted and nothing spent in this period.")
				return nil
			}

			fmt.Printf("Budget vs actual, %s to %s\n\n", start, end)
			fmt.Printf("%-20s %12s %12s %12s\n", "Category", "Budgeted", "Actual", "Difference")
			for _, line := range cmp.Lines {
				fmt.Printf("%-20s %12s %12s %12s\n",
					line.Category, line.Budgeted.Display(), line.Actual.Display(), line.Difference.Display())
			}
			fmt.Printf("\n%-20s %12s %12s %12s\n",
				"Total", cmp.TotalBudgeted.Display(), cmp.TotalActual.Display(), cmp.TotalDifference.Display())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "period start YYYY-MM-DD (default current month)")
	cmd.Flags().StringVar(&to, "to", "", "period end YYYY-MM-DD (default current month)")
	return cmd
}

func newBudgetStatusCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show surplus or deficit against periodic income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			start, end, err := parsePeriodFlags(from, to)
			if err != nil {
				return err
			}
			status, amount := store.BudgetStatus(start, end)
			fmt.Printf("%s to %s: %s of %s (income %s)\n",
				start, end, status, amount.Display(), store.Income().Display())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "period start YYYY-MM-DD (default current month)")
	cmd.Flags().StringVar(&to, "to", "", "period end YYYY-MM-DD (default current month)")
	return cmd
}
