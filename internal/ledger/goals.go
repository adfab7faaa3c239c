package ledger

import (
	"fmt"

	"github.com/thevaultapp/vault/internal/model"
)

// GoalPatch is a field-wise savings-goal edit. Nil fields are left untouched.
// CurrentCents is included because an explicit goal edit is the one sanctioned
// way to lower progress.
type GoalPatch struct {
	Name         *string
	GoalCents    *int64
	CurrentCents *int64
	TargetDate   *string
	Active       *bool
}

// CreateSavingsGoal appends a new goal with zero progress.
func (l *Ledger) CreateSavingsGoal(name string, goalCents int64, targetDate string) (int64, error) {
	goal := model.SavingsGoal{
		ID:         l.newID(),
		Name:       name,
		GoalCents:  goalCents,
		TargetDate: targetDate,
		Active:     true,
	}
	if err := goal.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	l.snap.Savings = append(l.snap.Savings, goal)
	return goal.ID, nil
}

// EditSavingsGoal applies a direct field patch.
func (l *Ledger) EditSavingsGoal(id int64, patch GoalPatch) error {
	goal := l.goalByID(id)
	if goal == nil {
		return ErrTargetNotFound
	}

	updated := *goal
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.GoalCents != nil {
		updated.GoalCents = *patch.GoalCents
	}
	if patch.CurrentCents != nil {
		updated.CurrentCents = *patch.CurrentCents
	}
	if patch.TargetDate != nil {
		updated.TargetDate = *patch.TargetDate
	}
	if patch.Active != nil {
		updated.Active = *patch.Active
	}
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	*goal = updated
	return nil
}

// DeleteSavingsGoal removes the goal record. Past contributions stay in
// transaction history.
func (l *Ledger) DeleteSavingsGoal(id int64) error {
	for i := range l.snap.Savings {
		if l.snap.Savings[i].ID == id {
			l.snap.Savings = append(l.snap.Savings[:i], l.snap.Savings[i+1:]...)
			return nil
		}
	}
	return ErrTargetNotFound
}
