package ledger

import (
	"sort"

	"financio/internal/core"
)

const (
	Surplus BudgetStatus = "surplus"
	Deficit BudgetStatus = "deficit"
)

type (
	// BudgetStatus labels the income-versus-spend outcome for a period.
	BudgetStatus string

	// BudgetLine compares one category's budgeted amount against actual
	// spend. Difference is budgeted minus actual; negative means overspend.
	BudgetLine struct {
		Category   string
		Budgeted   core.Money
		Actual     core.Money
		Difference core.Money
	}

	// BudgetComparison is the full budget-versus-actual table plus totals.
	BudgetComparison struct {
		Lines           []BudgetLine
		TotalBudgeted   core.Money
		TotalActual     core.Money
		TotalDifference core.Money
	}
)

// CompareBudget aggregates expense transactions inside the period by
// category and lines them up against the budget table. Categories present
// on either side appear in the result: unbudgeted spend shows budgeted 0,
// budgeted categories without spend show actual 0. Lines are sorted by
// category name.
func CompareBudget(budget map[string]core.Money, txs []core.Transaction, periodStart, periodEnd core.Date) BudgetComparison {
	actual := map[string]core.Money{}
	for _, t := range txs {
		if t.Kind != core.Expense {
			continue
		}
		if t.Date.Before(periodStart) || t.Date.After(periodEnd) {
			continue
		}
		actual[t.Category] = actual[t.Category].Add(t.Amount)
	}

	seen := map[string]bool{}
	categories := make([]string, 0, len(budget)+len(actual))
	for c := range budget {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	for c := range actual {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)

	var cmp BudgetComparison
	cmp.Lines = make([]BudgetLine, 0, len(categories))
	for _, c := range categories {
		line := BudgetLine{
			Category: c,
			Budgeted: budget[c],
			Actual:   actual[c],
		}
		line.Difference = line.Budgeted.Sub(line.Actual)
		cmp.Lines = append(cmp.Lines, line)
		cmp.TotalBudgeted = cmp.TotalBudgeted.Add(line.Budgeted)
		cmp.TotalActual = cmp.TotalActual.Add(line.Actual)
	}
	cmp.TotalDifference = cmp.TotalBudgeted.Sub(cmp.TotalActual)
	return cmp
}

// Status compares periodic income against total expenses in the period.
// Zero counts as surplus.
func Status(income core.Money, txs []core.Transaction, periodStart, periodEnd core.Date) (BudgetStatus, core.Money) {
	var expenses core.Money
	for _, t := range txs {
		if t.Kind != core.Expense {
			continue
		}
		if t.Date.Before(periodStart) || t.Date.After(periodEnd) {
			continue
		}
		expenses = expenses.Add(t.Amount)
	}
	diff := income.Sub(expenses)
	if diff.IsNegative() {
		return Deficit, diff
	}
	return Surplus, diff
}

// CurrentMonthRange is the default analysis period: the first to last day of
// the month containing today.
func CurrentMonthRange(today core.Date) (core.Date, core.Date) {
	return today.StartOfMonth(), today.EndOfMonth()
}

// CompareBudget runs the budget comparison over the store's own budget
// table and transaction log.
func (s *Store) CompareBudget(periodStart, periodEnd core.Date) BudgetComparison {
	return CompareBudget(s.state.Budget, s.state.Transactions, periodStart, periodEnd)
}

// BudgetStatus computes the surplus/deficit for the period using the
// configured periodic income.
func (s *Store) BudgetStatus(periodStart, periodEnd core.Date) (BudgetStatus, core.Money) {
	return Status(s.state.Income, s.state.Transactions, periodStart, periodEnd)
}
