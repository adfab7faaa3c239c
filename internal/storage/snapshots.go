package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/model"
)

// snapshotVersion tags persisted documents so a future schema change can
// migrate old payloads instead of rejecting them.
const snapshotVersion = 1

type snapshotDocument struct {
	Snapshot *model.Snapshot `json:"snapshot"`
	Version  int             `json:"version"`
}

// SaveSnapshot persists the full ledger snapshot for a user, replacing any
// previous one.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, userID string, snap *model.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("snapshot must not be nil")
	}

	data, err := json.Marshal(snapshotDocument{Version: snapshotVersion, Snapshot: snap})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (user_id, version, data, saved_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			saved_at = CURRENT_TIMESTAMP
	`, userID, snapshotVersion, string(data))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the stored snapshot for a user. A user without prior
// state yields (nil, nil); a payload that fails to decode yields
// common.ErrSnapshotCorrupt so the session can start fresh instead of
// crashing.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, userID string) (*model.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM snapshots WHERE user_id = ?", userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var doc snapshotDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSnapshotCorrupt, err)
	}
	if doc.Snapshot == nil {
		return nil, fmt.Errorf("%w: document has no snapshot payload", common.ErrSnapshotCorrupt)
	}
	return doc.Snapshot, nil
}
