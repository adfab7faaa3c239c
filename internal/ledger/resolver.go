package ledger

import (
	"strings"

	"github.com/thevaultapp/vault/internal/model"
)

// nameMatches reports whether name contains query, case-insensitively. An
// empty query matches everything, which is what gives ResolveAccount its
// first-account fallback when no name was supplied.
func nameMatches(query, name string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// ResolveAccount returns the first account whose name contains query as a
// case-insensitive substring, in insertion order. There is no ranking and no
// ambiguity handling: when several accounts match, the first wins. Callers
// (and the tests) depend on this exact order, so do not "improve" the match.
func (l *Ledger) ResolveAccount(query string) (*model.Account, bool) {
	for i := range l.snap.Accounts {
		if nameMatches(query, l.snap.Accounts[i].Name) {
			return &l.snap.Accounts[i], true
		}
	}
	return nil, false
}

// ResolveAccountOrFirst resolves by name and falls back to the first account
// when the query is empty or unmatched. Returns false only when no accounts
// exist at all.
func (l *Ledger) ResolveAccountOrFirst(query string) (*model.Account, bool) {
	if account, ok := l.ResolveAccount(query); ok {
		return account, true
	}
	if len(l.snap.Accounts) > 0 {
		return &l.snap.Accounts[0], true
	}
	return nil, false
}

// ResolveDebt returns the first debt whose name contains query,
// case-insensitively, in insertion order.
func (l *Ledger) ResolveDebt(query string) (*model.Debt, bool) {
	for i := range l.snap.Debts {
		if nameMatches(query, l.snap.Debts[i].Name) {
			return &l.snap.Debts[i], true
		}
	}
	return nil, false
}

// ResolveGoal returns the first savings goal whose name contains query,
// case-insensitively, in insertion order.
func (l *Ledger) ResolveGoal(query string) (*model.SavingsGoal, bool) {
	for i := range l.snap.Savings {
		if nameMatches(query, l.snap.Savings[i].Name) {
			return &l.snap.Savings[i], true
		}
	}
	return nil, false
}

// FindTransactionByNotes returns the first transaction whose notes contain
// term, case-insensitively. Expenses are scanned before income, each in
// insertion order.
func (l *Ledger) FindTransactionByNotes(term string) (model.TransactionKind, int64, bool) {
	for i := range l.snap.Expenses {
		if nameMatches(term, l.snap.Expenses[i].Notes) {
			return model.KindExpense, l.snap.Expenses[i].ID, true
		}
	}
	for i := range l.snap.Income {
		if nameMatches(term, l.snap.Income[i].Notes) {
			return model.KindIncome, l.snap.Income[i].ID, true
		}
	}
	return "", 0, false
}
