// Package commands wires the ledger operations into a CLI. Every command
// opens the ledger from the configured document, and due recurring rules
// are processed on open, matching the load-then-process startup flow.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"financio/internal/amqp"
	"financio/internal/buildinfo"
	"financio/internal/config"
	"financio/internal/core"
	"financio/internal/ledger"
	"financio/internal/storage"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "financio",
		Short:   "Personal finance ledger with recurring transactions, budgets and savings goals",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newTxCommand())
	rootCmd.AddCommand(newRecurringCommand())
	rootCmd.AddCommand(newBudgetCommand())
	rootCmd.AddCommand(newGoalCommand())
	rootCmd.AddCommand(newIncomeCommand())
	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newDashboardCommand())

	return rootCmd
}

// openStore loads the ledger and processes due recurring rules, the same
// sequence the original application runs at startup. The returned cleanup
// closes the event publisher when one is configured.
func openStore(ctx context.Context) (*ledger.Store, func(), error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var events ledger.EventPublisher
	cleanup := func() {}
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			slog.WarnContext(ctx, "AMQP unavailable, ledger events disabled", "error", err)
		} else {
			events = client
			cleanup = func() { client.Close() }
		}
	}

	store, err := ledger.Open(ctx, storage.NewFileStore(cfg.DataFile), events)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	count, err := ledger.NewEngine(store).ProcessDue(ctx, core.Today())
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("processing due recurring rules: %w", err)
	}
	if count > 0 {
		fmt.Printf("Processed %d due recurring transaction(s).\n", count)
	}

	return store, cleanup, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag, defaulting to today.
func parseDateFlag(s string) (core.Date, error) {
	if s == "" {
		return core.Today(), nil
	}
	return core.ParseDate(s)
}

// parsePeriodFlags resolves an analysis period, defaulting to the current
// calendar month when both flags are empty.
func parsePeriodFlags(from, to string) (core.Date, core.Date, error) {
	if from == "" && to == "" {
		start, end := ledger.CurrentMonthRange(core.Today())
		return start, end, nil
	}
	start, err := core.ParseDate(from)
	if err != nil {
		return core.Date{}, core.Date{}, fmt.Errorf("--from: %w", err)
	}
	end, err := core.ParseDate(to)
	if err != nil {
		return core.Date{}, core.Date{}, fmt.Errorf("--to: %w", err)
	}
	return start, end, nil
}
