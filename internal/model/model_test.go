package model

import (
	"strings"
	"testing"
)

func TestCents(t *testing.T) {
	tests := []struct {
		name  string
		major float64
		want  int64
	}{
		{name: "whole dollars", major: 50, want: 5000},
		{name: "cents precision", major: 19.99, want: 1999},
		{name: "float drift", major: 0.1 + 0.2, want: 30},
		{name: "half cent rounds up", major: 0.005, want: 1},
		{name: "negative", major: -12.34, want: -1234},
		{name: "zero", major: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cents(tt.major); got != tt.want {
				t.Errorf("Cents(%v) = %d, want %d", tt.major, got, tt.want)
			}
		})
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		cents int64
	}{
		{name: "dollars and cents", cents: 1999, want: "$19.99"},
		{name: "single digit cents", cents: 105, want: "$1.05"},
		{name: "negative", cents: -1234, want: "-$12.34"},
		{name: "zero", cents: 0, want: "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCents(tt.cents); got != tt.want {
				t.Errorf("FormatCents(%d) = %q, want %q", tt.cents, got, tt.want)
			}
		})
	}
}

func TestAccountValidate(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		account Account
		wantErr bool
	}{
		{
			name:    "valid account",
			account: Account{Name: "Chase Checking", Type: AccountTypeBank},
		},
		{
			name:    "empty name",
			account: Account{Name: "  ", Type: AccountTypeBank},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "unknown type",
			account: Account{Name: "Wallet", Type: AccountType("WALLET")},
			wantErr: true,
			errMsg:  "unknown account type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.errMsg)
			}
		})
	}
}

func TestDebtValidate(t *testing.T) {
	tests := []struct {
		name    string
		debt    Debt
		wantErr bool
	}{
		{name: "valid", debt: Debt{Name: "Loan", TotalAmountCents: 500000, RemainingBalanceCents: 440000}},
		{name: "remaining above total", debt: Debt{Name: "Loan", TotalAmountCents: 1000, RemainingBalanceCents: 2000}, wantErr: true},
		{name: "negative remaining", debt: Debt{Name: "Loan", TotalAmountCents: 1000, RemainingBalanceCents: -1}, wantErr: true},
		{name: "empty name", debt: Debt{TotalAmountCents: 1000}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.debt.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in   string
		want AccountType
	}{
		{in: "bank", want: AccountTypeBank},
		{in: "CREDIT", want: AccountTypeCredit},
		{in: " investment ", want: AccountTypeInvestment},
		{in: "mattress", want: AccountTypeBank},
		{in: "", want: AccountTypeBank},
	}
	for _, tt := range tests {
		if got := ParseAccountType(tt.in); got != tt.want {
			t.Errorf("ParseAccountType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleForLevel(t *testing.T) {
	if got := TitleForLevel(1); got != "Novice Saver" {
		t.Errorf("TitleForLevel(1) = %q", got)
	}
	if got := TitleForLevel(5); got != "Fiscal Strategist" {
		t.Errorf("TitleForLevel(5) = %q", got)
	}
	// Levels past the table keep the last title.
	if got := TitleForLevel(99); got != "Vault Legend" {
		t.Errorf("TitleForLevel(99) = %q", got)
	}
	if got := TitleForLevel(0); got != "Novice Saver" {
		t.Errorf("TitleForLevel(0) = %q", got)
	}
}

func TestSnapshotClone(t *testing.T) {
	snap := NewSnapshot("hunter")
	snap.Accounts = append(snap.Accounts, Account{ID: 1, Name: "Checking", Type: AccountTypeBank, BalanceCents: 100})

	clone := snap.Clone()
	clone.Accounts[0].BalanceCents = 999
	clone.Expenses = append(clone.Expenses, Expense{ID: 2, Date: "2025-01-01"})

	if snap.Accounts[0].BalanceCents != 100 {
		t.Errorf("clone mutation leaked into original: balance = %d", snap.Accounts[0].BalanceCents)
	}
	if len(snap.Expenses) != 0 {
		t.Errorf("clone append leaked into original: %d expenses", len(snap.Expenses))
	}
}
