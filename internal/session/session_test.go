package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
)

type fakeStore struct {
	mu      sync.Mutex
	snaps   map[string]*model.Snapshot
	facts   map[string][]string
	loadErr error
	saveErr error
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		snaps: make(map[string]*model.Snapshot),
		facts: make(map[string][]string),
	}
}

func (f *fakeStore) SaveSnapshot(_ context.Context, userID string, snap *model.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snaps[userID] = snap.Clone()
	f.saves++
	return nil
}

func (f *fakeStore) LoadSnapshot(_ context.Context, userID string) (*model.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	snap, ok := f.snaps[userID]
	if !ok {
		return nil, nil
	}
	return snap.Clone(), nil
}

func (f *fakeStore) AddMemoryFact(_ context.Context, userID, fact string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.facts[userID] = append(f.facts[userID], fact)
	return nil
}

func (f *fakeStore) MemoryFacts(_ context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.facts[userID], nil
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) snapshot(userID string) *model.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snaps[userID]
}

func TestOpenFreshState(t *testing.T) {
	store := newFakeStore()

	s, err := Open(context.Background(), "hunter", store)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	s.View(func(l *ledger.Ledger) {
		assert.Equal(t, "hunter", l.Profile().Name)
		assert.Empty(t, l.Accounts())
		assert.Equal(t, 1, l.Stats().Level)
	})
}

func TestOpenRecoversFromCorruptSnapshot(t *testing.T) {
	store := newFakeStore()
	store.loadErr = fmt.Errorf("%w: bad payload", common.ErrSnapshotCorrupt)

	s, err := Open(context.Background(), "hunter", store)
	require.NoError(t, err, "corrupt state must not prevent opening a session")
	defer func() { _ = s.Close() }()

	s.View(func(l *ledger.Ledger) {
		assert.Empty(t, l.Accounts())
	})
}

func TestMutatePersistsOnClose(t *testing.T) {
	store := newFakeStore()

	s, err := Open(context.Background(), "hunter", store)
	require.NoError(t, err)

	err = s.Mutate(func(l *ledger.Ledger) error {
		_, err := l.CreateAccount("Chase Checking", model.AccountTypeBank, 100000, "")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	saved := store.snapshot("hunter")
	require.NotNil(t, saved)
	require.Len(t, saved.Accounts, 1)
	assert.Equal(t, int64(100000), saved.Accounts[0].BalanceCents)
}

func TestSessionReopensWithPriorState(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	s1, err := Open(ctx, "hunter", store)
	require.NoError(t, err)
	require.NoError(t, s1.Mutate(func(l *ledger.Ledger) error {
		_, err := l.CreateAccount("Savings", model.AccountTypeBank, 50000, "")
		return err
	}))
	require.NoError(t, s1.Close())

	s2, err := Open(ctx, "hunter", store)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	s2.View(func(l *ledger.Ledger) {
		accounts := l.Accounts()
		require.Len(t, accounts, 1)
		assert.Equal(t, "Savings", accounts[0].Name)
	})
}

func TestFailedMutationDoesNotSave(t *testing.T) {
	store := newFakeStore()

	s, err := Open(context.Background(), "hunter", store)
	require.NoError(t, err)

	wantErr := errors.New("boom")
	err = s.Mutate(func(l *ledger.Ledger) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
	require.NoError(t, s.Close())

	// Close always flushes, so a snapshot exists, but it holds no data from
	// the failed mutation.
	saved := store.snapshot("hunter")
	require.NotNil(t, saved)
	assert.Empty(t, saved.Accounts)
}

func TestLastSaveError(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	s, err := Open(ctx, "hunter", store)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	store.mu.Lock()
	store.saveErr = errors.New("disk full")
	store.mu.Unlock()

	assert.Error(t, s.Flush(ctx))
	assert.Error(t, s.LastSaveError())

	store.mu.Lock()
	store.saveErr = nil
	store.mu.Unlock()

	assert.NoError(t, s.Flush(ctx))
	assert.NoError(t, s.LastSaveError())
}

func TestMemoryFactsPassThrough(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	s, err := Open(ctx, "hunter", store)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.RememberFact(ctx, "Paid biweekly"))
	facts, err := s.MemoryFacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Paid biweekly"}, facts)
}

func TestActionLogBounded(t *testing.T) {
	var log ActionLog
	for i := 0; i < maxActionEntries+10; i++ {
		log.Record("addTransaction", fmt.Sprintf("entry %d", i))
	}

	entries := log.Recent(0)
	require.Len(t, entries, maxActionEntries)
	assert.Equal(t, "entry 10", entries[0].Detail, "oldest entries are evicted first")
	assert.Equal(t, fmt.Sprintf("entry %d", maxActionEntries+9), entries[len(entries)-1].Detail)
}

func TestActionLogSummary(t *testing.T) {
	var log ActionLog
	assert.Equal(t, "No recent activity.", log.Summary(10))

	log.Record("addAccount", "Chase Checking")
	log.Record("transferFunds", "Chase Checking to Savings")

	summary := log.Summary(10)
	assert.Contains(t, summary, "addAccount: Chase Checking")
	assert.Contains(t, summary, "transferFunds: Chase Checking to Savings")
}
