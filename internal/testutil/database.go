// Package testutil provides shared test helpers for wiring a store and a
// session without repeating persistence setup in every package.
package testutil

import (
	"context"
	"testing"

	"github.com/thevaultapp/vault/internal/session"
	"github.com/thevaultapp/vault/internal/storage"
)

// SetupTestStore creates a migrated in-memory store with automatic cleanup.
func SetupTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	store, err := storage.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// SetupTestSession opens a session for userID over a fresh store. The
// session and store are torn down when the test finishes.
func SetupTestSession(t *testing.T, userID string) *session.Session {
	t.Helper()

	store := SetupTestStore(t)
	sess, err := session.Open(context.Background(), userID, store)
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}

	t.Cleanup(func() {
		_ = sess.Close()
	})
	return sess
}
