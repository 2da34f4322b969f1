package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"financio/internal/core"
)

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show balances, budget status, recent activity and goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			dash := store.Dashboard(core.Today(), 5, 5)

			fmt.Println("Accounts")
			if len(dash.Accounts) == 0 {
				fmt.Println("  none")
			} else {
				names := make([]string, 0, len(dash.Accounts))
				for name := range dash.Accounts {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					acc := dash.Accounts[name]
					fmt.Printf("  %-20s %-12s %s\n", name, acc.Type, acc.Balance.Display())
				}
			}

			fmt.Printf("\nThis month: %s of %s\n", dash.Status, dash.StatusAmount.Display())

			fmt.Println("\nRecent transactions")
			if len(dash.Recent) == 0 {
				fmt.Println("  none")
			}
			for _, tx := range dash.Recent {
				desc := tx.Description
				if desc == "" {
					desc = tx.Category
				}
				fmt.Printf("  %s  %-7s %10s  %s\n", tx.Date, tx.Kind, tx.Amount.Display(), desc)
			}

			fmt.Println("\nGoals")
			if len(dash.Goals) == 0 {
				fmt.Println("  none")
			}
			for _, goal := range dash.Goals {
				fmt.Printf("  %-20s %s of %s (%.1f%%)\n",
					goal.Name, goal.Current.Display(), goal.Target.Display(), goal.Progress())
			}

			fmt.Println("\nUpcoming recurring")
			if len(dash.Upcoming) == 0 {
				fmt.Println("  none")
			}
			for _, rule := range dash.Upcoming {
				fmt.Printf("  %s  %-8s %10s  %s\n", rule.NextDue, rule.Frequency, rule.Amount.Display(), rule.Category)
			}
			return nil
		},
	}
}
