package model

import (
	"fmt"
	"strings"
)

// SavingsGoal is a savings target. CurrentCents only ever grows through
// contributions; it may overshoot GoalCents (no clamp at the target).
// Explicit goal edits are the one path that can lower it.
type SavingsGoal struct {
	Name         string `json:"name"`
	TargetDate   string `json:"targetDate,omitempty"`
	ID           int64  `json:"id"`
	GoalCents    int64  `json:"goalCents"`
	CurrentCents int64  `json:"currentCents"`
	Active       bool   `json:"active"`
}

// Validate checks construction-time invariants.
func (g *SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("goal name is required")
	}
	if g.GoalCents <= 0 {
		return fmt.Errorf("goal target must be positive, got %d", g.GoalCents)
	}
	if g.CurrentCents < 0 {
		return fmt.Errorf("goal progress must not be negative, got %d", g.CurrentCents)
	}
	return nil
}
