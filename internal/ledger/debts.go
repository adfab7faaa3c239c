package ledger

import (
	"fmt"

	"github.com/thevaultapp/vault/internal/model"
)

// DebtPatch is a field-wise debt edit. Nil fields are left untouched.
type DebtPatch struct {
	Name             *string
	TotalAmountCents *int64
	DueDate          *string
	MinPaymentCents  *int64
}

// CreateDebt appends a new debt with its remaining balance initialized to the
// full amount.
func (l *Ledger) CreateDebt(name string, totalAmountCents int64, dueDate string) (int64, error) {
	if totalAmountCents <= 0 {
		return 0, fmt.Errorf("%w: debt total must be positive, got %d", ErrInvalidInput, totalAmountCents)
	}
	debt := model.Debt{
		ID:                    l.newID(),
		Name:                  name,
		TotalAmountCents:      totalAmountCents,
		RemainingBalanceCents: totalAmountCents,
		DueDate:               dueDate,
	}
	if err := debt.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	l.snap.Debts = append(l.snap.Debts, debt)
	return debt.ID, nil
}

// EditDebt applies a direct field patch. No balance reversal cascades from
// it. Lowering the total clamps the remaining balance so the
// 0 <= remaining <= total invariant holds.
func (l *Ledger) EditDebt(id int64, patch DebtPatch) error {
	debt := l.debtByID(id)
	if debt == nil {
		return ErrTargetNotFound
	}
	if patch.TotalAmountCents != nil && *patch.TotalAmountCents <= 0 {
		return fmt.Errorf("%w: debt total must be positive, got %d", ErrInvalidInput, *patch.TotalAmountCents)
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return fmt.Errorf("%w: debt name is required", ErrInvalidInput)
		}
		debt.Name = *patch.Name
	}
	if patch.TotalAmountCents != nil {
		debt.TotalAmountCents = *patch.TotalAmountCents
		debt.RemainingBalanceCents = min(debt.RemainingBalanceCents, debt.TotalAmountCents)
	}
	if patch.DueDate != nil {
		debt.DueDate = *patch.DueDate
	}
	if patch.MinPaymentCents != nil {
		debt.MinPaymentCents = *patch.MinPaymentCents
	}
	return nil
}

// DeleteDebt removes the debt record. Companion expenses from past payments
// stay in transaction history.
func (l *Ledger) DeleteDebt(id int64) error {
	for i := range l.snap.Debts {
		if l.snap.Debts[i].ID == id {
			l.snap.Debts = append(l.snap.Debts[:i], l.snap.Debts[i+1:]...)
			return nil
		}
	}
	return ErrTargetNotFound
}
