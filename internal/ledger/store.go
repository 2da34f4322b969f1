// Package ledger owns the in-memory ledger state and every operation that
// mutates or derives from it. All durable writes go through a Persister;
// mutations persist on success and leave the store flagged dirty when the
// save fails, so callers can tell memory is ahead of disk.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"financio/internal/core"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account name already exists")
	ErrGoalNotFound     = errors.New("goal not found")
)

// Persister loads and saves the whole ledger document.
type Persister interface {
	Load(ctx context.Context) (*core.State, error)
	Save(ctx context.Context, state *core.State) error
}

// EventPublisher notifies external consumers of ledger changes. Publishing
// is best-effort: failures are logged and never fail the mutation.
type EventPublisher interface {
	PublishTransactionLogged(ctx context.Context, transactionID string) error
	PublishRuleProcessed(ctx context.Context, ruleID, transactionID string) error
	PublishGoalAchieved(ctx context.Context, goalName string) error
}

// Store is the sole owner of ledger state.
type Store struct {
	state   *core.State
	persist Persister
	events  EventPublisher // nil when event publishing is disabled
	dirty   bool
}

// Open loads the persisted ledger into a new Store. A missing or corrupt
// document yields an empty ledger (the persister logs the condition).
func Open(ctx context.Context, persist Persister, events EventPublisher) (*Store, error) {
	state, err := persist.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return &Store{state: state, persist: persist, events: events}, nil
}

// Dirty reports whether in-memory state is ahead of the persisted document
// because the last save failed.
func (s *Store) Dirty() bool { return s.dirty }

// TransactionParams holds the caller-supplied fields for LogTransaction.
type TransactionParams struct {
	Kind        core.TransactionKind
	Amount      core.Money
	Category    string
	Description string
	Date        core.Date
	AccountName string
}

// LogTransaction validates and appends a transaction, applies its balance
// effect when the named account exists, and persists. A named account that
// does not exist leaves the transaction unlinked rather than failing.
//
// On a persistence error the returned transaction is already part of the
// in-memory ledger; the store stays usable but Dirty until the next
// successful save.
func (s *Store) LogTransaction(ctx context.Context, p TransactionParams) (core.Transaction, error) {
	tx := core.Transaction{
		ID:          core.NewID(),
		Kind:        p.Kind,
		Amount:      p.Amount,
		Category:    strings.TrimSpace(p.Category),
		Description: p.Description,
		Date:        p.Date,
		AccountName: strings.TrimSpace(p.AccountName),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	if tx.AccountName != "" {
		if _, ok := s.state.Accounts[tx.AccountName]; !ok {
			slog.WarnContext(ctx, "Account not found, transaction left unlinked",
				"account", tx.AccountName,
				"category", tx.Category)
			tx.AccountName = ""
		}
	}

	s.state.Transactions = append(s.state.Transactions, tx)
	if tx.AccountName != "" {
		// The entry is committed to the log above, so the balance effect is
		// applied exactly once.
		if err := ApplyToAccount(s.state, tx.AccountName, tx.Kind, tx.Amount); err != nil {
			return core.Transaction{}, err
		}
	}

	if err := s.save(ctx); err != nil {
		return tx, err
	}
	s.publishTransactionLogged(ctx, tx.ID)
	slog.InfoContext(ctx, "Transaction logged",
		"transaction_id", tx.ID,
		"type", string(tx.Kind),
		"amount", tx.Amount.String(),
		"category", tx.Category)
	return tx, nil
}

// RuleParams holds the caller-supplied fields for AddRecurringRule.
type RuleParams struct {
	Kind        core.TransactionKind
	Amount      core.Money
	Category    string
	Description string
	Frequency   core.Frequency
	StartDate   core.Date
	AccountName string
}

// AddRecurringRule registers a recurring rule whose first occurrence is due
// on StartDate. As with LogTransaction, an unknown account name unlinks the
// rule instead of failing.
func (s *Store) AddRecurringRule(ctx context.Context, p RuleParams) (core.RecurringRule, error) {
	rule := core.RecurringRule{
		ID:          core.NewID(),
		Kind:        p.Kind,
		Amount:      p.Amount,
		Category:    strings.TrimSpace(p.Category),
		Description: p.Description,
		Frequency:   p.Frequency,
		NextDue:     p.StartDate,
		AccountName: strings.TrimSpace(p.AccountName),
	}
	if err := rule.Validate(); err != nil {
		return core.RecurringRule{}, err
	}

	if rule.AccountName != "" {
		if _, ok := s.state.Accounts[rule.AccountName]; !ok {
			slog.WarnContext(ctx, "Account not found, recurring rule left unlinked",
				"account", rule.AccountName,
				"category", rule.Category)
			rule.AccountName = ""
		}
	}

	s.state.Recurring = append(s.state.Recurring, rule)
	if err := s.save(ctx); err != nil {
		return rule, err
	}
	slog.InfoContext(ctx, "Recurring rule added",
		"rule_id", rule.ID,
		"frequency", string(rule.Frequency),
		"next_due", rule.NextDue.String())
	return rule, nil
}

// AccountParams holds the caller-supplied fields for AddAccount.
type AccountParams struct {
	Name      string
	Type      core.AccountType
	Balance   core.Money
	Limit     *core.Money // credit cards only
	Principal *core.Money // loans only
}

// AddAccount registers a new account under a unique name.
func (s *Store) AddAccount(ctx context.Context, p AccountParams) (core.Account, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return core.Account{}, core.ErrEmptyName
	}
	if !p.Type.Valid() {
		return core.Account{}, core.ErrUnknownAccountType
	}
	if _, ok := s.state.Accounts[name]; ok {
		return core.Account{}, fmt.Errorf("%w: %s", ErrDuplicateAccount, name)
	}

	// Debt balances are conventionally negative, but the convention is
	// advisory and never enforced.
	if (p.Type == core.CreditCard || p.Type == core.Loan) && p.Balance.IsPositive() {
		slog.WarnContext(ctx, "Debt account added with positive balance",
			"account", name,
			"type", string(p.Type))
	}

	acc := &core.Account{
		Type:      p.Type,
		Balance:   p.Balance,
		Limit:     p.Limit,
		Principal: p.Principal,
	}
	s.state.Accounts[name] = acc
	if err := s.save(ctx); err != nil {
		return *acc, err
	}
	slog.InfoContext(ctx, "Account added",
		"account", name,
		"type", string(p.Type),
		"balance", p.Balance.String())
	return *acc, nil
}

// SetBudget upserts the budgeted amount for a category. Last write wins.
func (s *Store) SetBudget(ctx context.Context, category string, amount core.Money) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return core.ErrEmptyCategory
	}
	if amount.IsNegative() {
		return core.ErrInvalidAmount
	}
	s.state.Budget[category] = amount
	return s.save(ctx)
}

// SetIncome sets the user's periodic income figure used by budget status.
func (s *Store) SetIncome(ctx context.Context, amount core.Money) error {
	if amount.IsNegative() {
		return core.ErrInvalidAmount
	}
	s.state.Income = amount
	return s.save(ctx)
}

// Income returns the configured periodic income.
func (s *Store) Income() core.Money { return s.state.Income }

// Transactions returns the transaction log in insertion order.
func (s *Store) Transactions() []core.Transaction {
	return append([]core.Transaction(nil), s.state.Transactions...)
}

// Rules returns the recurring rules in insertion order.
func (s *Store) Rules() []core.RecurringRule {
	return append([]core.RecurringRule(nil), s.state.Recurring...)
}

// Accounts returns a snapshot of all accounts keyed by name.
func (s *Store) Accounts() map[string]core.Account {
	out := make(map[string]core.Account, len(s.state.Accounts))
	for name, acc := range s.state.Accounts {
		out[name] = *acc
	}
	return out
}

// Account returns a single account snapshot by name.
func (s *Store) Account(name string) (core.Account, bool) {
	acc, ok := s.state.Accounts[name]
	if !ok {
		return core.Account{}, false
	}
	return *acc, true
}

// Budget returns a snapshot of the budget table.
func (s *Store) Budget() map[string]core.Money {
	out := make(map[string]core.Money, len(s.state.Budget))
	for k, v := range s.state.Budget {
		out[k] = v
	}
	return out
}

// Goals returns the goals in insertion order.
func (s *Store) Goals() []core.Goal {
	return append([]core.Goal(nil), s.state.Goals...)
}

// Badges returns earned badge labels in the order they were awarded.
func (s *Store) Badges() []string {
	return append([]string(nil), s.state.Badges...)
}

func (s *Store) save(ctx context.Context) error {
	if err := s.persist.Save(ctx, s.state); err != nil {
		s.dirty = true
		return fmt.Errorf("save ledger: %w", err)
	}
	s.dirty = false
	return nil
}

func (s *Store) publishTransactionLogged(ctx context.Context, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishTransactionLogged(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"transaction_id", id,
			"error", err)
	}
}

func (s *Store) publishRuleProcessed(ctx context.Context, ruleID, txID string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRuleProcessed(ctx, ruleID, txID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish rule event",
			"rule_id", ruleID,
			"transaction_id", txID,
			"error", err)
	}
}

func (s *Store) publishGoalAchieved(ctx context.Context, goalName string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishGoalAchieved(ctx, goalName); err != nil {
		slog.ErrorContext(ctx, "Failed to publish goal event",
			"goal", goalName,
			"error", err)
	}
}
