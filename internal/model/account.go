package model

import (
	"fmt"
	"strings"
	"time"
)

// AccountType classifies an account for display and reporting.
type AccountType string

const (
	// AccountTypeBank represents checking and ordinary bank accounts.
	AccountTypeBank AccountType = "BANK"
	// AccountTypeCash represents physical cash or cash-like holdings.
	AccountTypeCash AccountType = "CASH"
	// AccountTypeCredit represents credit cards and lines of credit.
	AccountTypeCredit AccountType = "CREDIT"
	// AccountTypeInvestment represents brokerage and retirement accounts.
	AccountTypeInvestment AccountType = "INVESTMENT"
	// AccountTypeOther covers anything that doesn't fit the above.
	AccountTypeOther AccountType = "OTHER"
)

// ParseAccountType normalizes a free-form type string to an AccountType.
// Unknown or empty input defaults to BANK, matching how assistant-supplied
// types are handled.
func ParseAccountType(s string) AccountType {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case AccountTypeBank, AccountTypeCash, AccountTypeCredit, AccountTypeInvestment, AccountTypeOther:
		return AccountType(strings.ToUpper(strings.TrimSpace(s)))
	default:
		return AccountTypeBank
	}
}

// Account is a single money container. BalanceCents is a running total
// maintained incrementally by the ledger: every mutation that touches this
// account adjusts it in the same step. It is never recomputed from history.
type Account struct {
	CreatedAt    time.Time   `json:"createdAt"`
	Name         string      `json:"name"`
	Notes        string      `json:"notes,omitempty"`
	Type         AccountType `json:"type"`
	ID           int64       `json:"id"`
	BalanceCents int64       `json:"balanceCents"`
}

// Validate checks construction-time invariants.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("account name is required")
	}
	switch a.Type {
	case AccountTypeBank, AccountTypeCash, AccountTypeCredit, AccountTypeInvestment, AccountTypeOther:
	default:
		return fmt.Errorf("unknown account type %q", a.Type)
	}
	return nil
}
