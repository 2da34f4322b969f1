package ledger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financio/internal/core"
	"financio/internal/ledger"
)

func TestProcessDueRealizesMonthlyRule(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	addBankAccount(t, store, "Checking", "0")

	_, err := store.LogTransaction(ctx, ledger.TransactionParams{
		Kind:        core.Income,
		Amount:      core.MustMoney("1000"),
		Category:    "Salary",
		Date:        core.MustParseDate("2024-01-01"),
		AccountName: "Checking",
	})
	require.NoError(t, err)

	rule, err := store.AddRecurringRule(ctx, ledger.RuleParams{
		Kind:        core.Expense,
		Amount:      core.MustMoney("50"),
		Category:    "Subscriptions",
		Description: "Gym membership",
		Frequency:   core.Monthly,
		StartDate:   core.MustParseDate("2024-01-15"),
		AccountName: "Checking",
	})
	require.NoError(t, err)

	count, err := ledger.NewEngine(store).ProcessDue(ctx, core.MustParseDate("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	txs := store.Transactions()
	require.Len(t, txs, 2)
	realized := txs[1]
	assert.Equal(t, core.MustParseDate("2024-01-15"), realized.Date, "occurrence is dated with the scheduled due date")
	assert.Equal(t, rule.ID, realized.RecurringID)
	assert.True(t, strings.HasPrefix(realized.Description, "(Recurring) "), "description = %q", realized.Description)

	acc, _ := store.Account("Checking")
	assert.True(t, acc.Balance.Equal(core.MustMoney("950")), "balance = %s", acc.Balance)

	rules := store.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, core.MustParseDate("2024-02-15"), rules[0].NextDue)

	count, err = ledger.NewEngine(store).ProcessDue(ctx, core.MustParseDate("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, count, "rule is not due again until 2024-02-15")
	assert.Len(t, store.Transactions(), 2)
}

func TestProcessDueOneOccurrencePerCall(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	// Rule three months behind: each call catches up one step.
	_, err := store.AddRecurringRule(ctx, ledger.RuleParams{
		Kind:      core.Expense,
		Amount:    core.MustMoney("10"),
		Category:  "Subscriptions",
		Frequency: core.Monthly,
		StartDate: core.MustParseDate("2024-01-01"),
	})
	require.NoError(t, err)
	engine := ledger.NewEngine(store)

	count, err := engine.ProcessDue(ctx, core.MustParseDate("2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, store.Transactions(), 1)
	assert.Equal(t, core.MustParseDate("2024-02-01"), store.Rules()[0].NextDue)

	// Still a month behind, but already processed today: the same-day guard
	// holds until the next calendar day.
	count, err = engine.ProcessDue(ctx, core.MustParseDate("2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = engine.ProcessDue(ctx, core.MustParseDate("2024-03-16"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, core.MustParseDate("2024-03-01"), store.Rules()[0].NextDue)
}

func TestProcessDueSameDayIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.AddRecurringRule(ctx, ledger.RuleParams{
		Kind:      core.Expense,
		Amount:    core.MustMoney("10"),
		Category:  "Subscriptions",
		Frequency: core.Daily,
		StartDate: core.MustParseDate("2024-01-01"),
	})
	require.NoError(t, err)
	engine := ledger.NewEngine(store)
	today := core.MustParseDate("2024-01-01")

	count, err := engine.ProcessDue(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// A daily rule advanced to 2024-01-02 is not due on 2024-01-01, but the
	// same-day guard is what protects rules still behind.
	count, err = engine.ProcessDue(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Len(t, store.Transactions(), 1)
}

func TestProcessDueMonthlyRuleFromJan31Clamps(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.AddRecurringRule(ctx, ledger.RuleParams{
		Kind:      core.Expense,
		Amount:    core.MustMoney("15"),
		Category:  "Utilities",
		Frequency: core.Monthly,
		StartDate: core.MustParseDate("2024-01-31"),
	})
	require.NoError(t, err)

	count, err := ledger.NewEngine(store).ProcessDue(ctx, core.MustParseDate("2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, core.MustParseDate("2024-02-29"), store.Rules()[0].NextDue)
}

func TestProcessDueNothingDueSkipsSave(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)

	_, err := store.AddRecurringRule(ctx, ledger.RuleParams{
		Kind:      core.Expense,
		Amount:    core.MustMoney("10"),
		Category:  "Subscriptions",
		Frequency: core.Monthly,
		StartDate: core.MustParseDate("2024-06-01"),
	})
	require.NoError(t, err)
	savesBefore := mem.SaveCount()

	count, err := ledger.NewEngine(store).ProcessDue(ctx, core.MustParseDate("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, savesBefore, mem.SaveCount(), "no-op processing must not persist")
}

func TestProcessDueFutureRuleNotDue(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.AddRecurringRule(ctx, ledger.RuleParams{
		Kind:      core.Income,
		Amount:    core.MustMoney("2000"),
		Category:  "Salary",
		Frequency: core.Monthly,
		StartDate: core.MustParseDate("2024-02-01"),
	})
	require.NoError(t, err)

	count, err := ledger.NewEngine(store).ProcessDue(ctx, core.MustParseDate("2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, store.Transactions())
}
