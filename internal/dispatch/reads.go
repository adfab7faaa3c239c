package dispatch

import (
	"fmt"

	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
)

// recentTransactionsLimit caps the getRecentTransactions projection so the
// assistant's context stays small regardless of history length.
const recentTransactionsLimit = 15

func (d *Dispatcher) getAccounts() Result {
	var accounts []model.Account
	d.sess.View(func(l *ledger.Ledger) { accounts = l.Accounts() })

	res := success(fmt.Sprintf("Retrieved %d accounts.", len(accounts)))
	res.Data = accounts
	return res
}

func (d *Dispatcher) getRecentTransactions() Result {
	var records []ledger.TransactionRecord
	d.sess.View(func(l *ledger.Ledger) {
		records = l.RecentTransactions(recentTransactionsLimit)
	})

	res := success(fmt.Sprintf("Retrieved %d transactions.", len(records)))
	res.Data = records
	return res
}

func (d *Dispatcher) getDebts() Result {
	var debts []model.Debt
	d.sess.View(func(l *ledger.Ledger) { debts = l.Debts() })

	res := success(fmt.Sprintf("Retrieved %d debts.", len(debts)))
	res.Data = debts
	return res
}

func (d *Dispatcher) getSavingsGoals() Result {
	var goals []model.SavingsGoal
	d.sess.View(func(l *ledger.Ledger) { goals = l.Goals() })

	res := success(fmt.Sprintf("Retrieved %d savings goals.", len(goals)))
	res.Data = goals
	return res
}

func (d *Dispatcher) getFinancialSummary() Result {
	var summary ledger.Summary
	d.sess.View(func(l *ledger.Ledger) { summary = l.Summarize() })

	res := success(fmt.Sprintf("Net worth is %s.", model.FormatCents(summary.NetWorthCents)))
	res.Data = summary
	return res
}
