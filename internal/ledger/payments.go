package ledger

import (
	"fmt"

	"github.com/thevaultapp/vault/internal/model"
)

// PaymentTarget selects what a payment applies to.
type PaymentTarget string

const (
	// TargetDebt pays down a debt's remaining balance.
	TargetDebt PaymentTarget = "DEBT"
	// TargetSavings contributes to a savings goal.
	TargetSavings PaymentTarget = "SAVINGS"
)

// ApplyPayment moves money from an account onto a debt or savings goal.
// The source balance is decremented unconditionally; there is no overdraft
// check on payments. A debt's remaining balance is clamped at zero; a goal's
// progress has no clamp and may overshoot the target. A companion expense is
// always recorded so the payment shows up in ordinary transaction history.
func (l *Ledger) ApplyPayment(target PaymentTarget, targetID, amountCents, accountID int64) error {
	if amountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidInput, amountCents)
	}
	account, ok := l.snap.Account(accountID)
	if !ok {
		return ErrAccountNotFound
	}

	switch target {
	case TargetDebt:
		debt := l.debtByID(targetID)
		if debt == nil {
			return ErrTargetNotFound
		}
		account.BalanceCents -= amountCents
		debt.RemainingBalanceCents = max(0, debt.RemainingBalanceCents-amountCents)
		l.appendCompanionExpense(accountID, amountCents, model.CategoryDebtPayment, fmt.Sprintf("Payment to %s", debt.Name), model.OriginManual)
		l.awardXP(model.XPDebtPayment, "Debt Payment")
	case TargetSavings:
		goal := l.goalByID(targetID)
		if goal == nil {
			return ErrTargetNotFound
		}
		account.BalanceCents -= amountCents
		goal.CurrentCents += amountCents
		l.appendCompanionExpense(accountID, amountCents, model.CategoryInvestment, fmt.Sprintf("Contribution to %s", goal.Name), model.OriginManual)
		l.awardXP(model.XPSavingsContribution, "Savings Contribution")
	default:
		return fmt.Errorf("%w: unknown payment target %q", ErrInvalidInput, target)
	}

	return nil
}

// TransferFunds moves money between two distinct accounts. This is the only
// money-movement operation with a sufficiency check. Companion records are
// written on both sides so the transfer is auditable from either account's
// history without double-counting net worth.
func (l *Ledger) TransferFunds(fromAccountID, toAccountID, amountCents int64) error {
	if amountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidInput, amountCents)
	}
	if fromAccountID == toAccountID {
		return fmt.Errorf("%w: source and destination are the same account", ErrInvalidTransfer)
	}
	from, ok := l.snap.Account(fromAccountID)
	if !ok {
		return ErrAccountNotFound
	}
	to, ok := l.snap.Account(toAccountID)
	if !ok {
		return ErrAccountNotFound
	}
	if from.BalanceCents < amountCents {
		return ErrInsufficientFunds
	}

	from.BalanceCents -= amountCents
	to.BalanceCents += amountCents

	note := fmt.Sprintf("Transfer from %s to %s", from.Name, to.Name)
	l.appendCompanionExpense(fromAccountID, amountCents, model.CategoryInvestment, note, model.OriginTransfer)
	l.snap.Income = append(l.snap.Income, model.Income{
		ID:          l.newID(),
		Date:        l.today(),
		AmountCents: amountCents,
		Source:      fmt.Sprintf("Transfer from %s", from.Name),
		AccountID:   toAccountID,
		Notes:       note,
	})
	l.awardXP(model.XPFundsTransferred, "Funds Transferred")
	return nil
}

// appendCompanionExpense records the expense side of a payment or transfer.
// It does not touch any balance; callers have already applied the delta.
func (l *Ledger) appendCompanionExpense(accountID, amountCents, categoryID int64, notes string, origin model.Origin) {
	l.snap.Expenses = append(l.snap.Expenses, model.Expense{
		ID:          l.newID(),
		Date:        l.today(),
		AmountCents: amountCents,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Notes:       notes,
		CreatedAt:   l.now(),
		Origin:      origin,
	})
}

func (l *Ledger) debtByID(id int64) *model.Debt {
	for i := range l.snap.Debts {
		if l.snap.Debts[i].ID == id {
			return &l.snap.Debts[i]
		}
	}
	return nil
}

func (l *Ledger) goalByID(id int64) *model.SavingsGoal {
	for i := range l.snap.Savings {
		if l.snap.Savings[i].ID == id {
			return &l.snap.Savings[i]
		}
	}
	return nil
}
