package ledger

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/thevaultapp/vault/internal/model"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return NewWithClock(model.NewSnapshot("test"), clock)
}

func mustCreateAccount(t *testing.T, l *Ledger, name string, balanceCents int64) int64 {
	t.Helper()
	id, err := l.CreateAccount(name, model.AccountTypeBank, balanceCents, "")
	if err != nil {
		t.Fatalf("CreateAccount(%q) failed: %v", name, err)
	}
	return id
}

func balance(t *testing.T, l *Ledger, id int64) int64 {
	t.Helper()
	account, ok := l.Snapshot().Account(id)
	if !ok {
		t.Fatalf("account %d not found", id)
	}
	return account.BalanceCents
}

func TestCreateTransactionAdjustsBalance(t *testing.T) {
	tests := []struct {
		name        string
		kind        model.TransactionKind
		amountCents int64
		wantBalance int64
	}{
		{name: "expense debits", kind: model.KindExpense, amountCents: 2550, wantBalance: 97450},
		{name: "income credits", kind: model.KindIncome, amountCents: 2550, wantBalance: 102550},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)
			accountID := mustCreateAccount(t, l, "Checking", 100000)

			_, err := l.CreateTransaction(NewTransaction{
				Kind:        tt.kind,
				AmountCents: tt.amountCents,
				AccountID:   accountID,
				Notes:       "coffee",
			})
			if err != nil {
				t.Fatalf("CreateTransaction failed: %v", err)
			}
			if got := balance(t, l, accountID); got != tt.wantBalance {
				t.Errorf("balance = %d, want %d", got, tt.wantBalance)
			}
		})
	}
}

func TestCreateTransactionRejectsBadInput(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 100000)

	if _, err := l.CreateTransaction(NewTransaction{Kind: model.KindExpense, AmountCents: 0, AccountID: accountID}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero amount: got %v, want ErrInvalidInput", err)
	}
	if _, err := l.CreateTransaction(NewTransaction{Kind: model.KindExpense, AmountCents: 100, AccountID: 999}); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("missing account: got %v, want ErrAccountNotFound", err)
	}
	if got := balance(t, l, accountID); got != 100000 {
		t.Errorf("failed creates must not move the balance: %d", got)
	}
}

func TestCreateDeleteRoundTrip(t *testing.T) {
	// Balance conservation: a create followed by a delete of the same
	// transaction restores the balance exactly.
	for _, kind := range []model.TransactionKind{model.KindExpense, model.KindIncome} {
		t.Run(string(kind), func(t *testing.T) {
			l := newTestLedger(t)
			accountID := mustCreateAccount(t, l, "Checking", 50000)

			id, err := l.CreateTransaction(NewTransaction{Kind: kind, AmountCents: 1234, AccountID: accountID})
			if err != nil {
				t.Fatalf("CreateTransaction failed: %v", err)
			}
			if err := l.DeleteTransaction(id); err != nil {
				t.Fatalf("DeleteTransaction failed: %v", err)
			}
			if got := balance(t, l, accountID); got != 50000 {
				t.Errorf("balance after round trip = %d, want 50000", got)
			}
			if len(l.Snapshot().Expenses)+len(l.Snapshot().Income) != 0 {
				t.Error("transaction record survived deletion")
			}
		})
	}
}

func TestEditTransactionAppliesDelta(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 100000)

	id, err := l.CreateTransaction(NewTransaction{Kind: model.KindExpense, AmountCents: 2000, AccountID: accountID, Notes: "groceries"})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	newAmount := int64(3500)
	if err := l.EditTransaction(id, TransactionPatch{AmountCents: &newAmount}); err != nil {
		t.Fatalf("EditTransaction failed: %v", err)
	}
	// 100000 - 2000 - (3500-2000) = 96500
	if got := balance(t, l, accountID); got != 96500 {
		t.Errorf("balance after edit = %d, want 96500", got)
	}
	if got := l.Snapshot().Expenses[0].AmountCents; got != 3500 {
		t.Errorf("stored amount = %d, want 3500", got)
	}

	if err := l.EditTransaction(999, TransactionPatch{}); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("missing id: got %v, want ErrTransactionNotFound", err)
	}
}

func TestEditTransactionIncomeDelta(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 0)

	id, err := l.CreateTransaction(NewTransaction{Kind: model.KindIncome, AmountCents: 1000, AccountID: accountID, Source: "Freelance"})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	newAmount := int64(1500)
	if err := l.EditTransaction(id, TransactionPatch{AmountCents: &newAmount}); err != nil {
		t.Fatalf("EditTransaction failed: %v", err)
	}
	if got := balance(t, l, accountID); got != 1500 {
		t.Errorf("balance after income edit = %d, want 1500", got)
	}
}

func TestTransferConservation(t *testing.T) {
	l := newTestLedger(t)
	fromID := mustCreateAccount(t, l, "A", 10000)
	toID := mustCreateAccount(t, l, "B", 0)

	if err := l.TransferFunds(fromID, toID, 5000); err != nil {
		t.Fatalf("TransferFunds failed: %v", err)
	}

	if got := balance(t, l, fromID); got != 5000 {
		t.Errorf("source balance = %d, want 5000", got)
	}
	if got := balance(t, l, toID); got != 5000 {
		t.Errorf("destination balance = %d, want 5000", got)
	}
	if balance(t, l, fromID)+balance(t, l, toID) != 10000 {
		t.Error("transfer created or destroyed money")
	}

	// Companion records on both sides.
	if len(l.Snapshot().Expenses) != 1 || l.Snapshot().Expenses[0].AmountCents != 5000 {
		t.Fatalf("want exactly one companion expense of 5000, got %+v", l.Snapshot().Expenses)
	}
	if l.Snapshot().Expenses[0].Origin != model.OriginTransfer {
		t.Errorf("companion expense origin = %q, want transfer", l.Snapshot().Expenses[0].Origin)
	}
	if len(l.Snapshot().Income) != 1 || l.Snapshot().Income[0].AmountCents != 5000 {
		t.Fatalf("want exactly one companion income of 5000, got %+v", l.Snapshot().Income)
	}
	if !strings.Contains(l.Snapshot().Income[0].Notes, "Transfer from A to B") {
		t.Errorf("companion income notes = %q", l.Snapshot().Income[0].Notes)
	}
}

func TestTransferRejections(t *testing.T) {
	l := newTestLedger(t)
	fromID := mustCreateAccount(t, l, "A", 1000)
	toID := mustCreateAccount(t, l, "B", 0)

	tests := []struct {
		wantErr error
		name    string
		from    int64
		to      int64
		amount  int64
	}{
		{name: "insufficient funds", from: fromID, to: toID, amount: 2000, wantErr: ErrInsufficientFunds},
		{name: "same account", from: fromID, to: fromID, amount: 100, wantErr: ErrInvalidTransfer},
		{name: "zero amount", from: fromID, to: toID, amount: 0, wantErr: ErrInvalidInput},
		{name: "missing destination", from: fromID, to: 999, amount: 100, wantErr: ErrAccountNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.TransferFunds(tt.from, tt.to, tt.amount); !errors.Is(err, tt.wantErr) {
				t.Errorf("TransferFunds() error = %v, want %v", err, tt.wantErr)
			}
			if balance(t, l, fromID) != 1000 || balance(t, l, toID) != 0 {
				t.Error("rejected transfer must leave both balances unchanged")
			}
		})
	}
}

func TestPayDebtClampsAtZero(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 100000)
	debtID, err := l.CreateDebt("Loan", 50000, "")
	if err != nil {
		t.Fatalf("CreateDebt failed: %v", err)
	}

	// Overpay: 600.00 against a 500.00 debt.
	if err := l.ApplyPayment(TargetDebt, debtID, 60000, accountID); err != nil {
		t.Fatalf("ApplyPayment failed: %v", err)
	}

	debt := l.debtByID(debtID)
	if debt.RemainingBalanceCents != 0 {
		t.Errorf("remaining = %d, want 0 (clamped)", debt.RemainingBalanceCents)
	}
	// No overdraft check: the account absorbs the full payment.
	if got := balance(t, l, accountID); got != 40000 {
		t.Errorf("account balance = %d, want 40000", got)
	}
	// Companion expense is visible in history and names the debt.
	if len(l.Snapshot().Expenses) != 1 {
		t.Fatalf("want one companion expense, got %d", len(l.Snapshot().Expenses))
	}
	exp := l.Snapshot().Expenses[0]
	if exp.AmountCents != 60000 || !strings.Contains(exp.Notes, "Loan") {
		t.Errorf("companion expense = %+v", exp)
	}
	if exp.CategoryID != model.CategoryDebtPayment {
		t.Errorf("companion category = %d, want %d", exp.CategoryID, model.CategoryDebtPayment)
	}
}

func TestContributeToSavingsOvershoots(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 0)
	goalID, err := l.CreateSavingsGoal("Japan Trip", 10000, "")
	if err != nil {
		t.Fatalf("CreateSavingsGoal failed: %v", err)
	}

	// Contribution drives the account negative (no overdraft check) and the
	// goal past its target (no clamp).
	if err := l.ApplyPayment(TargetSavings, goalID, 15000, accountID); err != nil {
		t.Fatalf("ApplyPayment failed: %v", err)
	}
	if got := l.goalByID(goalID).CurrentCents; got != 15000 {
		t.Errorf("goal progress = %d, want 15000", got)
	}
	if got := balance(t, l, accountID); got != -15000 {
		t.Errorf("account balance = %d, want -15000", got)
	}
	if !strings.Contains(l.Snapshot().Expenses[0].Notes, "Contribution to Japan Trip") {
		t.Errorf("companion notes = %q", l.Snapshot().Expenses[0].Notes)
	}
}

func TestApplyPaymentTargetNotFound(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 1000)

	if err := l.ApplyPayment(TargetDebt, 42, 100, accountID); !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("missing debt: got %v, want ErrTargetNotFound", err)
	}
	if got := balance(t, l, accountID); got != 1000 {
		t.Errorf("failed payment must not move the balance: %d", got)
	}
}

func TestEditAccountNeverTouchesBalance(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 12345)

	name := "Chase Checking"
	notes := "primary"
	if err := l.EditAccount(accountID, AccountPatch{Name: &name, Notes: &notes}); err != nil {
		t.Fatalf("EditAccount failed: %v", err)
	}
	account, _ := l.Snapshot().Account(accountID)
	if account.Name != "Chase Checking" || account.Notes != "primary" {
		t.Errorf("patch not applied: %+v", account)
	}
	if account.BalanceCents != 12345 {
		t.Errorf("cosmetic edit moved the balance: %d", account.BalanceCents)
	}

	if err := l.CorrectAccountBalance(accountID, 99999); err != nil {
		t.Fatalf("CorrectAccountBalance failed: %v", err)
	}
	if got := balance(t, l, accountID); got != 99999 {
		t.Errorf("corrected balance = %d, want 99999", got)
	}
}

func TestDeleteAccountLeavesOrphans(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 10000)
	if _, err := l.CreateTransaction(NewTransaction{Kind: model.KindExpense, AmountCents: 100, AccountID: accountID, Notes: "coffee"}); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	if err := l.DeleteAccount(accountID); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}
	// No cascade: the expense survives with a dangling account reference and
	// the projections stay defensive.
	if len(l.Snapshot().Expenses) != 1 {
		t.Fatalf("expense should survive account deletion")
	}
	records := l.RecentTransactions(15)
	if len(records) != 1 {
		t.Errorf("orphaned transaction missing from history")
	}
	if s := l.Summarize(); s.NetWorthCents != 0 {
		t.Errorf("deleted account still counted in net worth: %d", s.NetWorthCents)
	}

	// Deleting the orphan still works; the balance reversal is skipped.
	if err := l.DeleteTransaction(l.Snapshot().Expenses[0].ID); err != nil {
		t.Errorf("DeleteTransaction on orphan failed: %v", err)
	}
}

func TestEditDebtClampsRemaining(t *testing.T) {
	l := newTestLedger(t)
	debtID, err := l.CreateDebt("Car Loan", 300000, "2026-01-01")
	if err != nil {
		t.Fatalf("CreateDebt failed: %v", err)
	}

	newTotal := int64(100000)
	if err := l.EditDebt(debtID, DebtPatch{TotalAmountCents: &newTotal}); err != nil {
		t.Fatalf("EditDebt failed: %v", err)
	}
	debt := l.debtByID(debtID)
	if debt.RemainingBalanceCents != 100000 {
		t.Errorf("remaining = %d, want clamped to 100000", debt.RemainingBalanceCents)
	}
	if err := debt.Validate(); err != nil {
		t.Errorf("debt invariant violated after edit: %v", err)
	}
}

func TestXPSingleLevelUpPerAward(t *testing.T) {
	l := newTestLedger(t)
	stats := &l.Snapshot().Stats

	// An award far beyond one threshold advances exactly one level.
	l.awardXP(1000, "test")
	if stats.Level != 2 {
		t.Errorf("level = %d, want 2 (single level-up per award)", stats.Level)
	}
	if stats.XP != 900 {
		t.Errorf("xp = %d, want 900", stats.XP)
	}
	if stats.NextLevelXP != 150 {
		t.Errorf("nextLevelXp = %d, want 150", stats.NextLevelXP)
	}
	if stats.Title != model.TitleForLevel(2) {
		t.Errorf("title = %q", stats.Title)
	}
}

func TestXPAccrual(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 100000) // +50 XP

	if _, err := l.CreateTransaction(NewTransaction{Kind: model.KindExpense, AmountCents: 100, AccountID: accountID}); err != nil {
		t.Fatal(err)
	}
	// 50 + 10 = 60
	if got := l.Snapshot().Stats.XP; got != 60 {
		t.Errorf("xp = %d, want 60", got)
	}
	if got := l.Snapshot().Stats.Level; got != 1 {
		t.Errorf("level = %d, want 1", got)
	}
}

func TestIDsAreUniqueAndMonotonic(t *testing.T) {
	l := newTestLedger(t)
	accountID := mustCreateAccount(t, l, "Checking", 1000000)

	seen := make(map[int64]bool)
	last := int64(0)
	for i := 0; i < 100; i++ {
		id, err := l.CreateTransaction(NewTransaction{Kind: model.KindExpense, AmountCents: 1, AccountID: accountID})
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		if id <= last {
			t.Fatalf("ids not monotonic: %d after %d", id, last)
		}
		seen[id] = true
		last = id
	}
}
