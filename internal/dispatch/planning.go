package dispatch

import (
	"errors"
	"fmt"

	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
)

func (d *Dispatcher) addDebt(params map[string]any) Result {
	name := stringParam(params, "name")
	total, _ := numberParam(params, "totalAmount")
	dueDate := stringParam(params, "dueDate")

	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		_, err := l.CreateDebt(name, model.Cents(total), dueDate)
		return err
	})
	if err != nil {
		return failure(failureMessage(err))
	}
	return success(fmt.Sprintf("Debt %s added.", name))
}

func (d *Dispatcher) updateDebt(params map[string]any) Result {
	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		debt, ok := l.ResolveDebt(stringParam(params, "debtName"))
		if !ok {
			res = failure("Debt not found.")
			return errNoOp
		}

		var patch ledger.DebtPatch
		if v := stringParam(params, "newName"); v != "" {
			patch.Name = &v
		}
		if v, ok := numberParam(params, "newTotal"); ok {
			cents := model.Cents(v)
			patch.TotalAmountCents = &cents
		}
		if err := l.EditDebt(debt.ID, patch); err != nil {
			return err
		}
		res = success("Debt details updated.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) deleteDebt(params map[string]any) Result {
	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		debt, ok := l.ResolveDebt(stringParam(params, "name"))
		if !ok {
			res = failure("Debt not found.")
			return errNoOp
		}
		if err := l.DeleteDebt(debt.ID); err != nil {
			return err
		}
		res = success("Debt record deleted.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) addSavingsGoal(params map[string]any) Result {
	name := stringParam(params, "name")
	target, _ := numberParam(params, "targetAmount")
	targetDate := stringParam(params, "targetDate")

	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		_, err := l.CreateSavingsGoal(name, model.Cents(target), targetDate)
		return err
	})
	if err != nil {
		return failure(failureMessage(err))
	}
	return success(fmt.Sprintf("Goal %s created.", name))
}

func (d *Dispatcher) updateSavingsGoal(params map[string]any) Result {
	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		goal, ok := l.ResolveGoal(stringParam(params, "currentName"))
		if !ok {
			res = failure("Goal not found.")
			return errNoOp
		}

		var patch ledger.GoalPatch
		if v := stringParam(params, "newName"); v != "" {
			patch.Name = &v
		}
		if v, ok := numberParam(params, "newTarget"); ok {
			cents := model.Cents(v)
			patch.GoalCents = &cents
		}
		if err := l.EditSavingsGoal(goal.ID, patch); err != nil {
			return err
		}
		res = success("Goal updated.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) deleteSavingsGoal(params map[string]any) Result {
	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		goal, ok := l.ResolveGoal(stringParam(params, "name"))
		if !ok {
			res = failure("Goal not found.")
			return errNoOp
		}
		if err := l.DeleteSavingsGoal(goal.ID); err != nil {
			return err
		}
		res = success("Goal deleted.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) payDebt(params map[string]any) Result {
	amount, _ := numberParam(params, "amount")

	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		debt, okDebt := l.ResolveDebt(stringParam(params, "debtName"))
		account, okAccount := l.ResolveAccount(stringParam(params, "fromAccountName"))
		if !okDebt || !okAccount {
			res = failure("Debt or Account not found.")
			return errNoOp
		}
		if err := l.ApplyPayment(ledger.TargetDebt, debt.ID, model.Cents(amount), account.ID); err != nil {
			return err
		}
		res = success("Payment processed.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}

func (d *Dispatcher) contributeToSavings(params map[string]any) Result {
	amount, _ := numberParam(params, "amount")

	var res Result
	err := d.sess.Mutate(func(l *ledger.Ledger) error {
		goal, okGoal := l.ResolveGoal(stringParam(params, "goalName"))
		account, okAccount := l.ResolveAccount(stringParam(params, "fromAccountName"))
		if !okGoal || !okAccount {
			res = failure("Goal or Account not found.")
			return errNoOp
		}
		if err := l.ApplyPayment(ledger.TargetSavings, goal.ID, model.Cents(amount), account.ID); err != nil {
			return err
		}
		res = success("Contribution processed.")
		return nil
	})
	if err != nil && !errors.Is(err, errNoOp) {
		res = failure(failureMessage(err))
	}
	return res
}
