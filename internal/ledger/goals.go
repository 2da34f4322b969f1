package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"financio/internal/core"
)

// goalContributionCategory is the expense category used when a contribution
// is also logged as a transaction.
const goalContributionCategory = "Savings Goal"

// GoalParams holds the caller-supplied fields for AddGoal.
type GoalParams struct {
	Name     string
	Target   core.Money
	Current  core.Money
	Deadline *core.Date
}

// AddGoal registers a savings goal and immediately runs the completion
// check, so a goal created already at or past its target earns its badge
// right away.
func (s *Store) AddGoal(ctx context.Context, p GoalParams) (core.Goal, error) {
	goal := core.Goal{
		ID:       core.NewID(),
		Name:     strings.TrimSpace(p.Name),
		Target:   p.Target,
		Current:  p.Current,
		Deadline: p.Deadline,
	}
	if err := goal.Validate(); err != nil {
		return core.Goal{}, err
	}

	s.state.Goals = append(s.state.Goals, goal)
	achieved := s.checkGoalCompletion(ctx, s.state.GoalByID(goal.ID))
	if err := s.save(ctx); err != nil {
		return goal, err
	}
	if achieved {
		s.publishGoalAchieved(ctx, goal.Name)
	}
	slog.InfoContext(ctx, "Goal added",
		"goal_id", goal.ID,
		"goal", goal.Name,
		"target", goal.Target.String())
	return goal, nil
}

// ContributionOptions controls the optional expense record that can
// accompany a goal contribution.
type ContributionOptions struct {
	// LogExpense also records the contribution as an expense transaction.
	LogExpense bool
	// AccountName links that expense to an account; unknown names leave it
	// unlinked, same as LogTransaction.
	AccountName string
	// Date of the expense record. Zero means today.
	Date core.Date
}

// ContributeGoal adds a positive amount to a goal's saved total. The total
// only ever grows; there is no withdrawal operation.
func (s *Store) ContributeGoal(ctx context.Context, goalID string, amount core.Money, opts ContributionOptions) (core.Goal, error) {
	if err := amount.Validate(); err != nil {
		return core.Goal{}, err
	}
	goal := s.state.GoalByID(goalID)
	if goal == nil {
		return core.Goal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, goalID)
	}

	goal.Current = goal.Current.Add(amount)

	var loggedTx *core.Transaction
	if opts.LogExpense {
		date := opts.Date
		if date.IsZero() {
			date = core.Today()
		}
		tx := core.Transaction{
			ID:          core.NewID(),
			Kind:        core.Expense,
			Amount:      amount,
			Category:    goalContributionCategory,
			Description: "Contribution to goal: " + goal.Name,
			Date:        date,
			AccountName: strings.TrimSpace(opts.AccountName),
		}
		if tx.AccountName != "" {
			if _, ok := s.state.Accounts[tx.AccountName]; !ok {
				slog.WarnContext(ctx, "Account not found, contribution expense left unlinked",
					"account", tx.AccountName,
					"goal", goal.Name)
				tx.AccountName = ""
			}
		}
		s.state.Transactions = append(s.state.Transactions, tx)
		if tx.AccountName != "" {
			if err := ApplyToAccount(s.state, tx.AccountName, tx.Kind, tx.Amount); err != nil {
				return core.Goal{}, err
			}
		}
		loggedTx = &tx
	}

	achieved := s.checkGoalCompletion(ctx, goal)
	if err := s.save(ctx); err != nil {
		return *goal, err
	}
	if loggedTx != nil {
		s.publishTransactionLogged(ctx, loggedTx.ID)
	}
	if achieved {
		s.publishGoalAchieved(ctx, goal.Name)
	}
	slog.InfoContext(ctx, "Goal contribution recorded",
		"goal_id", goal.ID,
		"goal", goal.Name,
		"amount", amount.String(),
		"current", goal.Current.String())
	return *goal, nil
}

// checkGoalCompletion awards the completion badge when the goal's saved
// total has reached its target. The badge is a set member: once earned it is
// never added again, no matter how often the condition is re-observed.
func (s *Store) checkGoalCompletion(ctx context.Context, goal *core.Goal) bool {
	if !goal.Current.GreaterThanOrEqual(goal.Target) {
		return false
	}
	label := fmt.Sprintf("Goal Achieved: %s!", goal.Name)
	if s.state.HasBadge(label) {
		return false
	}
	s.state.Badges = append(s.state.Badges, label)
	slog.InfoContext(ctx, "Goal achieved",
		"goal", goal.Name,
		"badge", label)
	return true
}
