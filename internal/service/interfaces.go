// Package service defines the interfaces between the application's layers.
package service

import (
	"context"

	"github.com/thevaultapp/vault/internal/model"
)

// Store is the persistence gateway contract. Snapshots are stored whole,
// keyed by an opaque user id; there is no partial update. A missing snapshot
// is reported as (nil, nil), not an error.
type Store interface {
	// SaveSnapshot persists the full ledger snapshot for a user, replacing
	// any previous one.
	SaveSnapshot(ctx context.Context, userID string, snap *model.Snapshot) error
	// LoadSnapshot returns the stored snapshot for a user, or nil when the
	// user has no prior state.
	LoadSnapshot(ctx context.Context, userID string) (*model.Snapshot, error)

	// Memory facts are the assistant's long-term memory, outside the ledger.
	AddMemoryFact(ctx context.Context, userID, fact string) error
	MemoryFacts(ctx context.Context, userID string) ([]string, error)

	Close() error
}
