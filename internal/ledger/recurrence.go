package ledger

import (
	"context"
	"log/slog"

	"financio/internal/core"
)

// recurringPrefix marks transactions that were realized from a rule.
const recurringPrefix = "(Recurring) "

// Engine realizes due recurring rules into transactions.
type Engine struct {
	store *Store
}

func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// ProcessDue walks the rules in order and realizes every rule that is due:
// next_due_date on or before today and not already processed today. Each
// realized occurrence is dated with the rule's scheduled due date (not
// today), linked back to the rule, applied to the linked account, and the
// rule's due date rolls forward by exactly one frequency step.
//
// At most one occurrence is realized per rule per invocation. A rule that is
// several periods behind catches up one step per call; it is not looped
// until current. Returns the number of rules advanced; the ledger is
// persisted only when that count is positive.
func (e *Engine) ProcessDue(ctx context.Context, today core.Date) (int, error) {
	state := e.store.state
	processed := 0

	for i := range state.Recurring {
		rule := &state.Recurring[i]
		if !ruleDue(rule, today) {
			continue
		}

		tx := core.Transaction{
			ID:          core.NewID(),
			Kind:        rule.Kind,
			Amount:      rule.Amount,
			Category:    rule.Category,
			Description: recurringPrefix + rule.Description,
			Date:        rule.NextDue,
			AccountName: rule.AccountName,
			RecurringID: rule.ID,
		}
		state.Transactions = append(state.Transactions, tx)

		if tx.AccountName != "" {
			if err := ApplyToAccount(state, tx.AccountName, tx.Kind, tx.Amount); err != nil {
				// The linked account disappeared since the rule was created.
				// The realized transaction stands; only the balance effect
				// is skipped.
				slog.WarnContext(ctx, "Linked account missing, balance not updated",
					"rule_id", rule.ID,
					"account", tx.AccountName)
			}
		}

		rule.NextDue = nextOccurrence(rule.NextDue, rule.Frequency)
		mark := today
		rule.LastProcessed = &mark
		processed++

		slog.InfoContext(ctx, "Processed recurring rule",
			"rule_id", rule.ID,
			"category", rule.Category,
			"amount", rule.Amount.String(),
			"next_due", rule.NextDue.String())
		e.store.publishRuleProcessed(ctx, rule.ID, tx.ID)
	}

	if processed > 0 {
		if err := e.store.save(ctx); err != nil {
			return processed, err
		}
	}
	return processed, nil
}

// ruleDue implements the two-part due check: the scheduled date has arrived
// and the rule has not been realized yet on this calendar day.
func ruleDue(r *core.RecurringRule, today core.Date) bool {
	if r.NextDue.After(today) {
		return false
	}
	return r.LastProcessed == nil || !r.LastProcessed.Equal(today)
}

// nextOccurrence advances a due date by one frequency step. Monthly steps
// clamp the day of month (Jan 31 -> Feb 28/29); yearly steps clamp Feb 29
// on non-leap target years.
func nextOccurrence(d core.Date, f core.Frequency) core.Date {
	switch f {
	case core.Daily:
		return d.AddDays(1)
	case core.Weekly:
		return d.AddDays(7)
	case core.Monthly:
		return d.AddMonths(1)
	case core.Yearly:
		return d.AddYears(1)
	}
	// Frequencies are validated when rules are created.
	return d
}
