package ledger

import (
	"sort"

	"financio/internal/core"
)

// Dashboard is the read model behind the summary view: balances, this
// month's budget status, the latest activity and what is coming up.
type Dashboard struct {
	Accounts     map[string]core.Account
	Status       BudgetStatus
	StatusAmount core.Money
	Recent       []core.Transaction
	Goals        []core.Goal
	Upcoming     []core.RecurringRule
}

// Dashboard assembles the summary for the month containing today.
func (s *Store) Dashboard(today core.Date, recent, upcoming int) Dashboard {
	start, end := CurrentMonthRange(today)
	status, amount := s.BudgetStatus(start, end)
	return Dashboard{
		Accounts:     s.Accounts(),
		Status:       status,
		StatusAmount: amount,
		Recent:       s.RecentTransactions(recent),
		Goals:        s.Goals(),
		Upcoming:     s.UpcomingRules(upcoming),
	}
}

// RecentTransactions returns up to n transactions, most recent date first.
// Same-day entries keep their log order.
func (s *Store) RecentTransactions(n int) []core.Transaction {
	txs := s.Transactions()
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	if n > 0 && len(txs) > n {
		txs = txs[:n]
	}
	return txs
}

// UpcomingRules returns up to n recurring rules ordered by next due date.
func (s *Store) UpcomingRules(n int) []core.RecurringRule {
	rules := s.Rules()
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].NextDue.Before(rules[j].NextDue)
	})
	if n > 0 && len(rules) > n {
		rules = rules[:n]
	}
	return rules
}
