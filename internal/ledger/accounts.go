package ledger

import (
	"fmt"

	"github.com/thevaultapp/vault/internal/model"
)

// AccountPatch is a field-wise account edit. Nil fields are left untouched.
// Balance is deliberately absent: cosmetic edits must never clobber a
// computed balance. Use CorrectAccountBalance for that.
type AccountPatch struct {
	Name  *string
	Type  *model.AccountType
	Notes *string
}

// CreateAccount appends a new account. The balance is initialized to the
// starting value, not derived from history.
func (l *Ledger) CreateAccount(name string, accountType model.AccountType, startingBalanceCents int64, notes string) (int64, error) {
	account := model.Account{
		ID:           l.newID(),
		Name:         name,
		Type:         accountType,
		BalanceCents: startingBalanceCents,
		Notes:        notes,
		CreatedAt:    l.now(),
	}
	if err := account.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	l.snap.Accounts = append(l.snap.Accounts, account)
	l.awardXP(model.XPAccountCreated, "Account Created")
	return account.ID, nil
}

// EditAccount applies a field-wise merge of name, type, and notes.
func (l *Ledger) EditAccount(id int64, patch AccountPatch) error {
	account, ok := l.snap.Account(id)
	if !ok {
		return ErrAccountNotFound
	}

	updated := *account
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	*account = updated
	return nil
}

// CorrectAccountBalance overwrites an account's running balance without
// reconciling against transaction history. This is an explicit escape hatch
// for corrections; it intentionally breaks the balance-equals-sum-of-effects
// model, so it is a separate operation rather than part of EditAccount.
func (l *Ledger) CorrectAccountBalance(id, balanceCents int64) error {
	account, ok := l.snap.Account(id)
	if !ok {
		return ErrAccountNotFound
	}
	account.BalanceCents = balanceCents
	return nil
}

// DeleteAccount removes the account. Transactions that reference it are left
// in place with a dangling account id; projections tolerate the orphans. The
// account's balance effect is discarded, not redistributed.
func (l *Ledger) DeleteAccount(id int64) error {
	for i := range l.snap.Accounts {
		if l.snap.Accounts[i].ID == id {
			l.snap.Accounts = append(l.snap.Accounts[:i], l.snap.Accounts[i+1:]...)
			return nil
		}
	}
	return ErrAccountNotFound
}
