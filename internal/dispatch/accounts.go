package dispatch

import (
	"errors"
	"fmt"

	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
)

// defaultNotes marks records created without caller-supplied notes.
const defaultNotes = "AI Generated"

func (d *Dispatcher) addAccount(params map[string]any) Result {
	name := stringParam(params, "name")
	balance, _ := numberParam(params, "balance")
	notes := stringParam(params, "notes")
	if notes == "" {
		notes = defaultNotes
	}
	accountType := model.ParseAccountType(stringParam(params, "type"))

	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		_, err := l.CreateAccount(name, accountType, model.Cents(balance), notes)
		return err
	})
	if err != nil {
		return failure(failureMessage(err))
	}
	return success(fmt.Sprintf("Account %s created successfully.", name))
}

func (d *Dispatcher) editAccount(params map[string]any) Result {
	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		account, ok := l.ResolveAccount(stringParam(params, "currentName"))
		if !ok {
			res = failure("Account not found.")
			return errNoOp
		}

		var patch ledger.AccountPatch
		if v := stringParam(params, "newName"); v != "" {
			patch.Name = &v
		}
		if v := stringParam(params, "newNotes"); v != "" {
			patch.Notes = &v
		}
		if err := l.EditAccount(account.ID, patch); err != nil {
			return err
		}
		// A balance override is a correction, not a cosmetic edit, so it
		// goes through the dedicated operation.
		if v, ok := numberParam(params, "newBalance"); ok {
			if err := l.CorrectAccountBalance(account.ID, model.Cents(v)); err != nil {
				return err
			}
		}
		res = success("Account updated.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) deleteAccount(params map[string]any) Result {
	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		account, ok := l.ResolveAccount(stringParam(params, "name"))
		if !ok {
			res = failure("Account not found.")
			return errNoOp
		}
		if err := l.DeleteAccount(account.ID); err != nil {
			return err
		}
		res = success(fmt.Sprintf("Account %s deleted.", account.Name))
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}
