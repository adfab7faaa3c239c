// Package dispatch is the single externally callable surface over a session.
// Both the CLI and the assistant issue the same named actions through
// Execute, so every caller shares one code path and one set of ledger rules.
//
// Business failures are reported as Result values, never as errors: a
// resolver miss or an insufficient balance comes back as {success:false}
// with a short human-readable message.
package dispatch

import (
	"context"
	"errors"

	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/session"
)

// Result is the dispatcher's uniform response envelope.
type Result struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Dispatcher routes named actions to ledger operations on one session.
type Dispatcher struct {
	sess *session.Session
}

// New returns a dispatcher bound to a session.
func New(sess *session.Session) *Dispatcher {
	return &Dispatcher{sess: sess}
}

// errNoOp aborts a Mutate from inside the closure without scheduling a
// snapshot save. Used when resolution fails before any state is touched.
var errNoOp = errors.New("dispatch: no mutation performed")

// Execute runs one named action. Monetary parameters arrive in major
// currency units (decimal dollars) and are converted to integer cents here,
// at the boundary; nothing past this point handles floats.
//
// Unknown action names are deliberately treated as soft successes: the
// caller may be a best-effort language model, and an action it hallucinated
// should not abort the conversation.
func (d *Dispatcher) Execute(ctx context.Context, action string, params map[string]any) Result {
	if params == nil {
		params = map[string]any{}
	}
	if res, ok := validateParams(action, params); !ok {
		return res
	}

	var res Result
	switch action {
	case ActionGetAccounts:
		res = d.getAccounts()
	case ActionGetRecentTransactions:
		res = d.getRecentTransactions()
	case ActionGetDebts:
		res = d.getDebts()
	case ActionGetSavingsGoals:
		res = d.getSavingsGoals()
	case ActionGetFinancialSummary:
		res = d.getFinancialSummary()
	case ActionAddAccount:
		res = d.addAccount(params)
	case ActionEditAccount:
		res = d.editAccount(params)
	case ActionDeleteAccount:
		res = d.deleteAccount(params)
	case ActionAddTransaction:
		res = d.addTransaction(params)
	case ActionEditTransaction:
		res = d.editTransaction(params)
	case ActionDeleteTransaction:
		res = d.deleteTransaction(params)
	case ActionTransferFunds:
		res = d.transferFunds(params)
	case ActionAddDebt:
		res = d.addDebt(params)
	case ActionUpdateDebt:
		res = d.updateDebt(params)
	case ActionDeleteDebt:
		res = d.deleteDebt(params)
	case ActionAddSavingsGoal:
		res = d.addSavingsGoal(params)
	case ActionUpdateSavingsGoal:
		res = d.updateSavingsGoal(params)
	case ActionDeleteSavingsGoal:
		res = d.deleteSavingsGoal(params)
	case ActionPayDebt:
		res = d.payDebt(params)
	case ActionContributeToSavings:
		res = d.contributeToSavings(params)
	case ActionUpdateProfile:
		res = d.updateProfile(params)
	case ActionRememberFact:
		res = d.rememberFact(ctx, params)
	default:
		res = success("Action Processed")
	}

	d.sess.Actions().Record(action, res.Message)
	common.LogDebug("Action dispatched", common.Fields{
		"action":  action,
		"success": res.Success,
	})
	return res
}

func success(message string) Result {
	return Result{Success: true, Message: message}
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

// failureMessage maps ledger errors to the short user-facing strings the
// dispatcher contract promises. Raw error text never leaks to callers.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return "Transaction not found."
	case errors.Is(err, ledger.ErrTargetNotFound):
		return "Target not found."
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, ledger.ErrInvalidTransfer):
		return "Transfers require two different accounts."
	case errors.Is(err, ledger.ErrInvalidInput):
		return "Invalid amount or input."
	}
	return common.UserMessage(err)
}
