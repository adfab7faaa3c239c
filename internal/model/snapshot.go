// Package model defines the ledger's entity types and their construction-time
// invariants. Monetary amounts are integer cents throughout; floating point
// exists only at the dispatcher boundary.
package model

// Snapshot is the complete in-memory ledger for one user at one point in
// time. Exactly one snapshot exists per active session; the ledger engine is
// its only writer.
type Snapshot struct {
	Profile  UserProfile   `json:"profile"`
	Accounts []Account     `json:"accounts"`
	Expenses []Expense     `json:"expenses"`
	Income   []Income      `json:"income"`
	Debts    []Debt        `json:"debts"`
	Savings  []SavingsGoal `json:"savings"`
	Stats    UserStats     `json:"stats"`
}

// NewSnapshot returns the empty ledger a brand-new user starts with.
func NewSnapshot(userName string) *Snapshot {
	return &Snapshot{
		Profile:  DefaultProfile(userName),
		Accounts: []Account{},
		Expenses: []Expense{},
		Income:   []Income{},
		Debts:    []Debt{},
		Savings:  []SavingsGoal{},
		Stats:    NewUserStats(),
	}
}

// Clone returns a deep copy. Entity structs contain only value fields, so
// copying the backing slices is sufficient. Used by the write-behind saver to
// serialize outside the session lock.
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	c.Accounts = append([]Account(nil), s.Accounts...)
	c.Expenses = append([]Expense(nil), s.Expenses...)
	c.Income = append([]Income(nil), s.Income...)
	c.Debts = append([]Debt(nil), s.Debts...)
	c.Savings = append([]SavingsGoal(nil), s.Savings...)
	return &c
}

// Account returns the account with the given id, or false when it does not
// exist. Callers must handle the miss: deletion leaves orphaned references
// behind by design.
func (s *Snapshot) Account(id int64) (*Account, bool) {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i], true
		}
	}
	return nil, false
}
