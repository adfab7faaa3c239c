package ledger

import "github.com/thevaultapp/vault/internal/model"

// TransactionRecord is a unified read-only view over expenses and income,
// used by history projections and the dispatcher's read actions.
type TransactionRecord struct {
	Kind        model.TransactionKind `json:"kind"`
	Date        string                `json:"date"`
	Notes       string                `json:"notes"`
	Detail      string                `json:"detail"` // category name for expenses, source for income
	ID          int64                 `json:"id"`
	AmountCents int64                 `json:"amountCents"`
	AccountID   int64                 `json:"accountId"`
}

// Summary is the net-worth projection. Liabilities include negative account
// balances and remaining debt; all figures tolerate orphaned account
// references.
type Summary struct {
	NetWorthCents      int64 `json:"netWorthCents"`
	AssetsCents        int64 `json:"assetsCents"`
	LiabilitiesCents   int64 `json:"liabilitiesCents"`
	DebtRemainingCents int64 `json:"debtRemainingCents"`
}

// Accounts returns a copy of the account list in insertion order.
func (l *Ledger) Accounts() []model.Account {
	return append([]model.Account(nil), l.snap.Accounts...)
}

// Debts returns a copy of the debt list in insertion order.
func (l *Ledger) Debts() []model.Debt {
	return append([]model.Debt(nil), l.snap.Debts...)
}

// Goals returns a copy of the savings-goal list in insertion order.
func (l *Ledger) Goals() []model.SavingsGoal {
	return append([]model.SavingsGoal(nil), l.snap.Savings...)
}

// Profile returns the current user profile.
func (l *Ledger) Profile() model.UserProfile {
	return l.snap.Profile
}

// Stats returns the current gamification stats.
func (l *Ledger) Stats() model.UserStats {
	return l.snap.Stats
}

// RecentTransactions returns up to limit records, expenses first then income,
// each in insertion order. A non-positive limit returns everything.
func (l *Ledger) RecentTransactions(limit int) []TransactionRecord {
	if limit <= 0 {
		limit = len(l.snap.Expenses) + len(l.snap.Income)
	}
	records := make([]TransactionRecord, 0, limit)
	for _, exp := range l.snap.Expenses {
		if len(records) >= limit {
			return records
		}
		detail := ""
		if cat, ok := model.CategoryByID(exp.CategoryID); ok {
			detail = cat.Name
		}
		records = append(records, TransactionRecord{
			Kind:        model.KindExpense,
			ID:          exp.ID,
			Date:        exp.Date,
			AmountCents: exp.AmountCents,
			AccountID:   exp.AccountID,
			Notes:       exp.Notes,
			Detail:      detail,
		})
	}
	for _, inc := range l.snap.Income {
		if len(records) >= limit {
			return records
		}
		records = append(records, TransactionRecord{
			Kind:        model.KindIncome,
			ID:          inc.ID,
			Date:        inc.Date,
			AmountCents: inc.AmountCents,
			AccountID:   inc.AccountID,
			Notes:       inc.Notes,
			Detail:      inc.Source,
		})
	}
	return records
}

// Summarize computes the net-worth projection from account balances and
// outstanding debt.
func (l *Ledger) Summarize() Summary {
	var s Summary
	for _, account := range l.snap.Accounts {
		if account.BalanceCents >= 0 {
			s.AssetsCents += account.BalanceCents
		} else {
			s.LiabilitiesCents += -account.BalanceCents
		}
		s.NetWorthCents += account.BalanceCents
	}
	for _, debt := range l.snap.Debts {
		s.DebtRemainingCents += debt.RemainingBalanceCents
	}
	s.LiabilitiesCents += s.DebtRemainingCents
	s.NetWorthCents -= s.DebtRemainingCents
	return s
}
