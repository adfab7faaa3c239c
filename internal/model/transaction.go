package model

import (
	"fmt"
	"strings"
	"time"
)

// TransactionKind distinguishes the two ledger record types.
type TransactionKind string

const (
	// KindExpense is a debit against an account.
	KindExpense TransactionKind = "EXPENSE"
	// KindIncome is a credit to an account.
	KindIncome TransactionKind = "INCOME"
)

// Origin records how a transaction entered the ledger.
type Origin string

const (
	// OriginManual marks transactions entered through a form or CLI command.
	OriginManual Origin = "manual"
	// OriginRecurring marks transactions materialized from a recurring schedule.
	OriginRecurring Origin = "recurring"
	// OriginAIGenerated marks transactions created by the assistant.
	OriginAIGenerated Origin = "ai_generated"
	// OriginReceiptScan marks transactions created from a scanned receipt.
	OriginReceiptScan Origin = "receipt_scan"
	// OriginTransfer marks companion records created by a funds transfer.
	OriginTransfer Origin = "transfer"
)

// Recurrence describes an optional repeating schedule on a transaction.
type Recurrence struct {
	Frequency   string `json:"frequency,omitempty"` // e.g. "weekly", "monthly"
	NextDueDate string `json:"nextDueDate,omitempty"`
	IsRecurring bool   `json:"isRecurring,omitempty"`
}

// Expense is a debit. Creating one decrements the referenced account's
// balance by AmountCents; deleting one increments it back.
type Expense struct {
	CreatedAt   time.Time `json:"createdAt"`
	Date        string    `json:"date"`
	Notes       string    `json:"notes"`
	Origin      Origin    `json:"metaOrigin"`
	Recurrence  Recurrence `json:"recurrence,omitzero"`
	ID          int64 `json:"id"`
	AmountCents int64 `json:"amountCents"`
	CategoryID  int64 `json:"categoryId"`
	AccountID   int64 `json:"accountId"`
}

// Income is a credit. Creating one increments the referenced account's
// balance; deletion reverses it, symmetric to Expense.
type Income struct {
	Date        string `json:"date"`
	Source      string `json:"source"`
	Notes       string `json:"notes"`
	Recurrence  Recurrence `json:"recurrence,omitzero"`
	ID          int64 `json:"id"`
	AmountCents int64 `json:"amountCents"`
	AccountID   int64 `json:"accountId"`
}

// Validate checks construction-time invariants.
func (e *Expense) Validate() error {
	if e.AmountCents < 0 {
		return fmt.Errorf("expense amount must not be negative, got %d", e.AmountCents)
	}
	if strings.TrimSpace(e.Date) == "" {
		return fmt.Errorf("expense date is required")
	}
	return nil
}

// Validate checks construction-time invariants.
func (i *Income) Validate() error {
	if i.AmountCents < 0 {
		return fmt.Errorf("income amount must not be negative, got %d", i.AmountCents)
	}
	if strings.TrimSpace(i.Date) == "" {
		return fmt.Errorf("income date is required")
	}
	return nil
}
