package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financio/internal/core"
	"financio/internal/ledger"
	"financio/internal/storage"
)

func newTestStore(t *testing.T) (*ledger.Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	store, err := ledger.Open(context.Background(), mem, nil)
	require.NoError(t, err)
	return store, mem
}

func addBankAccount(t *testing.T, store *ledger.Store, name, balance string) {
	t.Helper()
	_, err := store.AddAccount(context.Background(), ledger.AccountParams{
		Name:    name,
		Type:    core.Bank,
		Balance: core.MustMoney(balance),
	})
	require.NoError(t, err)
}

func TestLogTransaction(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	addBankAccount(t, store, "Checking", "500")

	tx, err := store.LogTransaction(ctx, ledger.TransactionParams{
		Kind:        core.Expense,
		Amount:      core.MustMoney("49.99"),
		Category:    "Food",
		Description: "Groceries",
		Date:        core.MustParseDate("2024-01-10"),
		AccountName: "Checking",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "Checking", tx.AccountName)

	acc, ok := store.Account("Checking")
	require.True(t, ok)
	assert.True(t, acc.Balance.Equal(core.MustMoney("450.01")), "balance = %s", acc.Balance)

	income, err := store.LogTransaction(ctx, ledger.TransactionParams{
		Kind:        core.Income,
		Amount:      core.MustMoney("100"),
		Category:    "Salary",
		Date:        core.MustParseDate("2024-01-11"),
		AccountName: "Checking",
	})
	require.NoError(t, err)
	assert.Equal(t, core.Income, income.Kind)

	acc, _ = store.Account("Checking")
	assert.True(t, acc.Balance.Equal(core.MustMoney("550.01")), "balance = %s", acc.Balance)
	assert.Len(t, store.Transactions(), 2)
}

func TestLogTransactionRejectsInvalidAmount(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	for _, amount := range []string{"0", "-25"} {
		_, err := store.LogTransaction(ctx, ledger.TransactionParams{
			Kind:     core.Expense,
			Amount:   core.MustMoney(amount),
			Category: "Food",
			Date:     core.MustParseDate("2024-01-10"),
		})
		assert.ErrorIs(t, err, core.ErrInvalidAmount, "amount %s", amount)
	}

	// Rejected transactions must leave the log untouched.
	assert.Empty(t, store.Transactions())
}

func TestLogTransactionUnknownAccountLeftUnlinked(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	tx, err := store.LogTransaction(ctx, ledger.TransactionParams{
		Kind:        core.Expense,
		Amount:      core.MustMoney("10"),
		Category:    "Misc",
		Date:        core.MustParseDate("2024-01-10"),
		AccountName: "NoSuchAccount",
	})
	require.NoError(t, err)
	assert.Empty(t, tx.AccountName, "transaction should be recorded without an account link")
	assert.Len(t, store.Transactions(), 1)
}

func TestAddAccount(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	limit := core.MustMoney("5000")
	acc, err := store.AddAccount(ctx, ledger.AccountParams{
		Name:    "Visa",
		Type:    core.CreditCard,
		Balance: core.MustMoney("-320.50"),
		Limit:   &limit,
	})
	require.NoError(t, err)
	assert.Equal(t, core.CreditCard, acc.Type)
	require.NotNil(t, acc.Limit)

	_, err = store.AddAccount(ctx, ledger.AccountParams{
		Name:    "Visa",
		Type:    core.Bank,
		Balance: core.MustMoney("0"),
	})
	assert.ErrorIs(t, err, ledger.ErrDuplicateAccount)

	_, err = store.AddAccount(ctx, ledger.AccountParams{
		Name:    "  ",
		Type:    core.Bank,
		Balance: core.MustMoney("0"),
	})
	assert.ErrorIs(t, err, core.ErrEmptyName)

	_, err = store.AddAccount(ctx, ledger.AccountParams{
		Name:    "Broker",
		Type:    "brokerage",
		Balance: core.MustMoney("0"),
	})
	assert.ErrorIs(t, err, core.ErrUnknownAccountType)
}

func TestAddRecurringRuleUnknownAccountLeftUnlinked(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	rule, err := store.AddRecurringRule(ctx, ledger.RuleParams{
		Kind:        core.Expense,
		Amount:      core.MustMoney("9.99"),
		Category:    "Subscriptions",
		Frequency:   core.Monthly,
		StartDate:   core.MustParseDate("2024-02-01"),
		AccountName: "Ghost",
	})
	require.NoError(t, err)
	assert.Empty(t, rule.AccountName)
	assert.Equal(t, core.MustParseDate("2024-02-01"), rule.NextDue)
}

func TestSetBudget(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.SetBudget(ctx, "Food", core.MustMoney("300")))
	// Last write wins.
	require.NoError(t, store.SetBudget(ctx, "Food", core.MustMoney("350")))

	budget := store.Budget()
	require.Contains(t, budget, "Food")
	assert.True(t, budget["Food"].Equal(core.MustMoney("350")))

	assert.ErrorIs(t, store.SetBudget(ctx, "", core.MustMoney("100")), core.ErrEmptyCategory)
	assert.ErrorIs(t, store.SetBudget(ctx, "Rent", core.MustMoney("-1")), core.ErrInvalidAmount)
}

func TestSetIncome(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.SetIncome(ctx, core.MustMoney("2500")))
	assert.True(t, store.Income().Equal(core.MustMoney("2500")))

	assert.ErrorIs(t, store.SetIncome(ctx, core.MustMoney("-1")), core.ErrInvalidAmount)
	assert.True(t, store.Income().Equal(core.MustMoney("2500")), "failed set must not change income")
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)
	addBankAccount(t, store, "Checking", "100")
	require.NoError(t, store.SetIncome(ctx, core.MustMoney("2000")))

	reopened, err := ledger.Open(ctx, mem, nil)
	require.NoError(t, err)
	assert.True(t, reopened.Income().Equal(core.MustMoney("2000")))
	acc, ok := reopened.Account("Checking")
	require.True(t, ok)
	assert.True(t, acc.Balance.Equal(core.MustMoney("100")))
}
