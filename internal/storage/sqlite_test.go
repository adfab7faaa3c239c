package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/model"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()), "failed to migrate")
	return store
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	snap := model.NewSnapshot("hunter")
	snap.Accounts = append(snap.Accounts, model.Account{
		ID: 1, Name: "Chase Checking", Type: model.AccountTypeBank, BalanceCents: 452000,
	})
	snap.Expenses = append(snap.Expenses, model.Expense{
		ID: 2, Date: "2025-06-01", AmountCents: 2550, CategoryID: 1, AccountID: 1,
		Notes: "Lunch", Origin: model.OriginManual,
	})
	snap.Debts = append(snap.Debts, model.Debt{
		ID: 3, Name: "Student Loan", TotalAmountCents: 2500000, RemainingBalanceCents: 1800000,
	})

	require.NoError(t, store.SaveSnapshot(ctx, "hunter", snap))

	loaded, err := store.LoadSnapshot(ctx, "hunter")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap.Accounts, loaded.Accounts)
	assert.Equal(t, snap.Expenses, loaded.Expenses)
	assert.Equal(t, snap.Debts, loaded.Debts)
	assert.Equal(t, snap.Stats, loaded.Stats)
	assert.Equal(t, "hunter", loaded.Profile.Name)
}

func TestSnapshotReplacesPrevious(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	first := model.NewSnapshot("u1")
	require.NoError(t, store.SaveSnapshot(ctx, "u1", first))

	second := model.NewSnapshot("u1")
	second.Accounts = append(second.Accounts, model.Account{ID: 9, Name: "Wallet", Type: model.AccountTypeCash})
	require.NoError(t, store.SaveSnapshot(ctx, "u1", second))

	loaded, err := store.LoadSnapshot(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, loaded.Accounts, 1)
	assert.Equal(t, "Wallet", loaded.Accounts[0].Name)
}

func TestLoadSnapshotNoPriorState(t *testing.T) {
	store := createTestStore(t)

	loaded, err := store.LoadSnapshot(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing snapshot must be (nil, nil), not an error")
}

func TestLoadSnapshotCorrupt(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		"INSERT INTO snapshots (user_id, version, data) VALUES (?, ?, ?)",
		"u1", 1, "{not json")
	require.NoError(t, err)

	_, err = store.LoadSnapshot(ctx, "u1")
	assert.True(t, errors.Is(err, common.ErrSnapshotCorrupt), "got %v", err)
}

func TestSnapshotsIsolatedByUser(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	a := model.NewSnapshot("alice")
	a.Accounts = append(a.Accounts, model.Account{ID: 1, Name: "Alice Checking", Type: model.AccountTypeBank})
	b := model.NewSnapshot("bob")

	require.NoError(t, store.SaveSnapshot(ctx, "alice", a))
	require.NoError(t, store.SaveSnapshot(ctx, "bob", b))

	loaded, err := store.LoadSnapshot(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, loaded.Accounts)
}

func TestMemoryFacts(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddMemoryFact(ctx, "u1", "Saving for a wedding in 2026"))
	require.NoError(t, store.AddMemoryFact(ctx, "u1", "Prefers detailed breakdowns"))
	// Duplicates are ignored.
	require.NoError(t, store.AddMemoryFact(ctx, "u1", "Saving for a wedding in 2026"))
	require.NoError(t, store.AddMemoryFact(ctx, "u2", "Other user"))

	facts, err := store.MemoryFacts(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Saving for a wedding in 2026", "Prefers detailed breakdowns"}, facts)
}

func TestValidation(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.SaveSnapshot(ctx, "", model.NewSnapshot("x")))
	assert.Error(t, store.SaveSnapshot(ctx, "u1", nil))
	_, err := store.LoadSnapshot(ctx, "  ")
	assert.Error(t, err)
	assert.Error(t, store.AddMemoryFact(ctx, "u1", ""))
}
