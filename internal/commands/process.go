package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"financio/internal/ledger"
)

func newProcessCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Process due recurring rules",
		Long: `Process realizes one occurrence of every recurring rule due on or
before the given date. Opening the ledger already processes rules for
today; this command exists to process explicitly for another date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			today, err := parseDateFlag(date)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			count, err := ledger.NewEngine(store).ProcessDue(ctx, today)
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Println("Nothing due.")
				return nil
			}
			fmt.Printf("Processed %d due recurring transaction(s).\n", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "process as of this date YYYY-MM-DD (default today)")
	return cmd
}
