package ledger

import (
	"testing"

	"github.com/thevaultapp/vault/internal/model"
)

func TestResolveAccountFirstMatchWins(t *testing.T) {
	l := newTestLedger(t)
	mustCreateAccount(t, l, "Chase Checking", 0)
	mustCreateAccount(t, l, "Chase Savings", 0)

	tests := []struct {
		name     string
		query    string
		wantName string
		wantOK   bool
	}{
		{name: "ambiguous query returns first in insertion order", query: "chase", wantName: "Chase Checking", wantOK: true},
		{name: "case insensitive", query: "SAVINGS", wantName: "Chase Savings", wantOK: true},
		{name: "substring in the middle", query: "se check", wantName: "Chase Checking", wantOK: true},
		{name: "empty query matches first", query: "", wantName: "Chase Checking", wantOK: true},
		{name: "no match", query: "wells", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, ok := l.ResolveAccount(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("ResolveAccount(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && account.Name != tt.wantName {
				t.Errorf("ResolveAccount(%q) = %q, want %q", tt.query, account.Name, tt.wantName)
			}
		})
	}
}

func TestResolveAccountDeterminism(t *testing.T) {
	l := newTestLedger(t)
	mustCreateAccount(t, l, "Chase Checking", 0)
	mustCreateAccount(t, l, "Chase Savings", 0)

	// Order-stable: repeated resolution always returns the first entry.
	for i := 0; i < 10; i++ {
		account, ok := l.ResolveAccount("chase")
		if !ok || account.Name != "Chase Checking" {
			t.Fatalf("iteration %d: got %v, want Chase Checking", i, account)
		}
	}
}

func TestResolveAccountOrFirst(t *testing.T) {
	l := newTestLedger(t)

	if _, ok := l.ResolveAccountOrFirst("anything"); ok {
		t.Error("no accounts: want ok=false")
	}

	mustCreateAccount(t, l, "Wallet Cash", 0)
	mustCreateAccount(t, l, "Robinhood", 0)

	account, ok := l.ResolveAccountOrFirst("robin")
	if !ok || account.Name != "Robinhood" {
		t.Errorf("named match: got %v", account)
	}
	account, ok = l.ResolveAccountOrFirst("no such account")
	if !ok || account.Name != "Wallet Cash" {
		t.Errorf("fallback: got %v, want first account", account)
	}
}

func TestResolveDebtAndGoal(t *testing.T) {
	l := newTestLedger(t)
	if _, err := l.CreateDebt("Student Loan", 100000, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateSavingsGoal("Japan Trip", 50000, ""); err != nil {
		t.Fatal(err)
	}

	if debt, ok := l.ResolveDebt("student"); !ok || debt.Name != "Student Loan" {
		t.Errorf("ResolveDebt: got %v, %v", debt, ok)
	}
	if _, ok := l.ResolveDebt("mortgage"); ok {
		t.Error("ResolveDebt: unexpected match")
	}
	if goal, ok := l.ResolveGoal("JAPAN"); !ok || goal.Name != "Japan Trip" {
		t.Errorf("ResolveGoal: got %v, %v", goal, ok)
	}
}

func TestFindTransactionByNotes(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 100000)

	expID, err := l.CreateTransaction(NewTransaction{Kind: model.KindExpense, AmountCents: 100, AccountID: accountID, Notes: "Coffee at Blue Bottle"})
	if err != nil {
		t.Fatal(err)
	}
	incID, err := l.CreateTransaction(NewTransaction{Kind: model.KindIncome, AmountCents: 5000, AccountID: accountID, Source: "Freelance", Notes: "Logo design invoice"})
	if err != nil {
		t.Fatal(err)
	}

	kind, id, ok := l.FindTransactionByNotes("blue bottle")
	if !ok || kind != model.KindExpense || id != expID {
		t.Errorf("expense lookup: got %v %d %v", kind, id, ok)
	}
	kind, id, ok = l.FindTransactionByNotes("invoice")
	if !ok || kind != model.KindIncome || id != incID {
		t.Errorf("income lookup: got %v %d %v", kind, id, ok)
	}
	if _, _, ok := l.FindTransactionByNotes("no such note"); ok {
		t.Error("unexpected match")
	}
}
