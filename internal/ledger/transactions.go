package ledger

import (
	"fmt"

	"github.com/thevaultapp/vault/internal/model"
)

// NewTransaction carries the inputs for CreateTransaction. CategoryID is used
// for expenses, Source for income. An empty Date means today; an empty Origin
// means manual.
type NewTransaction struct {
	Kind        model.TransactionKind
	Notes       string
	Date        string
	Source      string
	Origin      model.Origin
	Recurrence  model.Recurrence
	AmountCents int64
	AccountID   int64
	CategoryID  int64
}

// TransactionPatch is a field-wise transaction edit. Nil fields are left
// untouched.
type TransactionPatch struct {
	AmountCents *int64
	Notes       *string
	Date        *string
}

// CreateTransaction appends a new expense or income record and adjusts the
// referenced account's balance in the same step.
func (l *Ledger) CreateTransaction(p NewTransaction) (int64, error) {
	if p.AmountCents <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidInput, p.AmountCents)
	}
	account, ok := l.snap.Account(p.AccountID)
	if !ok {
		return 0, ErrAccountNotFound
	}

	date := p.Date
	if date == "" {
		date = l.today()
	}
	origin := p.Origin
	if origin == "" {
		origin = model.OriginManual
	}
	id := l.newID()

	switch p.Kind {
	case model.KindExpense:
		l.snap.Expenses = append(l.snap.Expenses, model.Expense{
			ID:          id,
			Date:        date,
			AmountCents: p.AmountCents,
			CategoryID:  p.CategoryID,
			AccountID:   p.AccountID,
			Notes:       p.Notes,
			CreatedAt:   l.now(),
			Origin:      origin,
			Recurrence:  p.Recurrence,
		})
		account.BalanceCents -= p.AmountCents
		l.awardXP(model.XPExpenseLogged, "Expense Logged")
	case model.KindIncome:
		l.snap.Income = append(l.snap.Income, model.Income{
			ID:          id,
			Date:        date,
			AmountCents: p.AmountCents,
			Source:      p.Source,
			AccountID:   p.AccountID,
			Notes:       p.Notes,
			Recurrence:  p.Recurrence,
		})
		account.BalanceCents += p.AmountCents
		l.awardXP(model.XPIncomeRecorded, "Income Recorded")
	default:
		return 0, fmt.Errorf("%w: unknown transaction kind %q", ErrInvalidInput, p.Kind)
	}

	return id, nil
}

// EditTransaction patches a stored transaction. When the amount changes, the
// owning account's balance absorbs the delta in the same step, so a reader
// never observes a half-applied edit. An orphaned account reference skips the
// balance adjustment.
func (l *Ledger) EditTransaction(id int64, patch TransactionPatch) error {
	if patch.AmountCents != nil && *patch.AmountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidInput, *patch.AmountCents)
	}

	for i := range l.snap.Expenses {
		exp := &l.snap.Expenses[i]
		if exp.ID != id {
			continue
		}
		if patch.AmountCents != nil {
			delta := *patch.AmountCents - exp.AmountCents
			if account, ok := l.snap.Account(exp.AccountID); ok {
				account.BalanceCents -= delta
			}
			exp.AmountCents = *patch.AmountCents
		}
		if patch.Notes != nil {
			exp.Notes = *patch.Notes
		}
		if patch.Date != nil {
			exp.Date = *patch.Date
		}
		return nil
	}

	for i := range l.snap.Income {
		inc := &l.snap.Income[i]
		if inc.ID != id {
			continue
		}
		if patch.AmountCents != nil {
			delta := *patch.AmountCents - inc.AmountCents
			if account, ok := l.snap.Account(inc.AccountID); ok {
				account.BalanceCents += delta
			}
			inc.AmountCents = *patch.AmountCents
		}
		if patch.Notes != nil {
			inc.Notes = *patch.Notes
		}
		if patch.Date != nil {
			inc.Date = *patch.Date
		}
		return nil
	}

	return ErrTransactionNotFound
}

// DeleteTransaction removes a record and reverses its original balance effect
// on the owning account, the symmetric inverse of create.
func (l *Ledger) DeleteTransaction(id int64) error {
	for i := range l.snap.Expenses {
		exp := l.snap.Expenses[i]
		if exp.ID != id {
			continue
		}
		if account, ok := l.snap.Account(exp.AccountID); ok {
			account.BalanceCents += exp.AmountCents
		}
		l.snap.Expenses = append(l.snap.Expenses[:i], l.snap.Expenses[i+1:]...)
		return nil
	}

	for i := range l.snap.Income {
		inc := l.snap.Income[i]
		if inc.ID != id {
			continue
		}
		if account, ok := l.snap.Account(inc.AccountID); ok {
			account.BalanceCents -= inc.AmountCents
		}
		l.snap.Income = append(l.snap.Income[:i], l.snap.Income[i+1:]...)
		return nil
	}

	return ErrTransactionNotFound
}
