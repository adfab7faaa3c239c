package dispatch

import (
	"errors"

	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
)

// defaultExpenseCategory is the catalogue entry expenses land in when the
// caller names no category.
const defaultExpenseCategory = int64(1)

func (d *Dispatcher) addTransaction(params map[string]any) Result {
	amount, _ := numberParam(params, "amount")
	kind := model.TransactionKind(stringParam(params, "type"))
	notes := stringParam(params, "notes")
	if notes == "" {
		notes = defaultNotes
	}

	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		account, ok := l.ResolveAccountOrFirst(stringParam(params, "accountName"))
		if !ok {
			res = failure("Account not found or no accounts exist.")
			return errNoOp
		}

		tx := ledger.NewTransaction{
			Kind:        kind,
			AmountCents: model.Cents(amount),
			AccountID:   account.ID,
			Notes:       notes,
			Origin:      model.OriginAIGenerated,
		}
		if kind == model.KindExpense {
			tx.CategoryID = defaultExpenseCategory
		} else {
			tx.Source = stringParam(params, "category")
		}
		if _, err := l.CreateTransaction(tx); err != nil {
			return err
		}
		res = success("Transaction added.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) editTransaction(params map[string]any) Result {
	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		_, id, ok := l.FindTransactionByNotes(stringParam(params, "searchTerm"))
		if !ok {
			res = failure("Transaction not found.")
			return errNoOp
		}

		var patch ledger.TransactionPatch
		if v, ok := numberParam(params, "newAmount"); ok {
			cents := model.Cents(v)
			patch.AmountCents = &cents
		}
		if v := stringParam(params, "newNotes"); v != "" {
			patch.Notes = &v
		}
		if v := stringParam(params, "newDate"); v != "" {
			patch.Date = &v
		}
		if err := l.EditTransaction(id, patch); err != nil {
			return err
		}
		res = success("Transaction updated.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) deleteTransaction(params map[string]any) Result {
	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		_, id, ok := l.FindTransactionByNotes(stringParam(params, "searchTerm"))
		if !ok {
			res = failure("Transaction not found.")
			return errNoOp
		}
		if err := l.DeleteTransaction(id); err != nil {
			return err
		}
		res = success("Transaction deleted and balance restored.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) transferFunds(params map[string]any) Result {
	amount, _ := numberParam(params, "amount")

	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		from, okFrom := l.ResolveAccount(stringParam(params, "fromAccountName"))
		to, okTo := l.ResolveAccount(stringParam(params, "toAccountName"))
		if !okFrom || !okTo {
			res = failure("One or both accounts not found.")
			return errNoOp
		}
		if err := l.TransferFunds(from.ID, to.ID, model.Cents(amount)); err != nil {
			return err
		}
		res = success("Transfer completed.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}
