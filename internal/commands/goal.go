package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"financio/internal/core"
	"financio/internal/ledger"
)

func newGoalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(newGoalAddCommand())
	cmd.AddCommand(newGoalContributeCommand())
	cmd.AddCommand(newGoalListCommand())
	cmd.AddCommand(newGoalBadgesCommand())
	return cmd
}

func newGoalAddCommand() *cobra.Command {
	var (
		current  string
		deadline string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Add a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			target, err := core.ParseMoney(args[1])
			if err != nil {
				return err
			}
			p := ledger.GoalParams{Name: args[0], Target: target}
			if current != "" {
				m, err := core.ParseMoney(current)
				if err != nil {
					return fmt.Errorf("--current: %w", err)
				}
				p.Current = m
			}
			if deadline != "" {
				d, err := core.ParseDate(deadline)
				if err != nil {
					return fmt.Errorf("--deadline: %w", err)
				}
				p.Deadline = &d
			}

			goal, err := store.AddGoal(ctx, p)
			if err != nil {
				return err
			}
			fmt.Printf("Added goal %q: %s of %s (%.1f%%)\n",
				goal.Name, goal.Current.Display(), goal.Target.Display(), goal.Progress())
			fmt.Printf("ID: %s\n", goal.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "amount already saved")
	cmd.Flags().StringVar(&deadline, "deadline", "", "target date YYYY-MM-DD")
	return cmd
}

func newGoalContributeCommand() *cobra.Command {
	var (
		logExpense bool
		account    string
		date       string
	)

	cmd := &cobra.Command{
		Use:   "contribute <goal-id> <amount>",
		Short: "Add to a goal's saved total",
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
			d, err := parseDateFlag(date)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}

			goal, err := store.ContributeGoal(ctx, args[0], amount, ledger.ContributionOptions{
				LogExpense:  logExpense,
				AccountName: account,
				Date:        d,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Goal %q now at %s of %s (%.1f%%)\n",
				goal.Name, goal.Current.Display(), goal.Target.Display(), goal.Progress())
			return nil
		},
	}

	cmd.Flags().BoolVar(&logExpense, "log-expense", false, "also record the contribution as an expense")
	cmd.Flags().StringVarP(&account, "account", "a", "", "account for the expense record")
	cmd.Flags().StringVar(&date, "date", "", "expense date YYYY-MM-DD (default today)")
	return cmd
}

func newGoalListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			goals := store.Goals()
			if len(goals) == 0 {
				fmt.Println("No goals.")
				return nil
			}
			for _, goal := range goals {
				line := fmt.Sprintf("%-20s %s of %s (%.1f%%)",
					goal.Name, goal.Current.Display(), goal.Target.Display(), goal.Progress())
				if goal.Deadline != nil {
					line += fmt.Sprintf("  by %s", goal.Deadline)
				}
				fmt.Println(line)
				fmt.Printf("  id: %s\n", goal.ID)
			}
			return nil
		},
	}
}

func newGoalBadgesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "List earned completion badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			badges := store.Badges()
			if len(badges) == 0 {
				fmt.Println("No badges earned yet.")
				return nil
			}
			for _, badge := range badges {
				fmt.Println(badge)
			}
			return nil
		},
	}
}
