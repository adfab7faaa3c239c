package model

import (
	"fmt"
	"strings"
)

// Debt is a standalone liability. Invariant:
// 0 <= RemainingBalanceCents <= TotalAmountCents at all times. Payments that
// exceed the remaining balance are clamped to zero by the ledger.
type Debt struct {
	Name                  string `json:"name"`
	DueDate               string `json:"dueDate,omitempty"`
	ID                    int64  `json:"id"`
	TotalAmountCents      int64  `json:"totalAmountCents"`
	RemainingBalanceCents int64  `json:"remainingBalanceCents"`
	MinPaymentCents       int64  `json:"minPaymentCents,omitempty"`
}

// Validate checks construction-time invariants.
func (d *Debt) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("debt name is required")
	}
	if d.TotalAmountCents < 0 {
		return fmt.Errorf("debt total must not be negative, got %d", d.TotalAmountCents)
	}
	if d.RemainingBalanceCents < 0 || d.RemainingBalanceCents > d.TotalAmountCents {
		return fmt.Errorf("debt remaining balance %d outside [0, %d]", d.RemainingBalanceCents, d.TotalAmountCents)
	}
	return nil
}
