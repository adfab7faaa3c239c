package storage

import (
	"context"
	"fmt"
)

// AddMemoryFact appends a fact to the assistant's long-term memory for a
// user. Duplicate facts are ignored.
func (s *SQLiteStore) AddMemoryFact(ctx context.Context, userID, fact string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(fact, "fact"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO memory_facts (user_id, fact) VALUES (?, ?)",
		userID, fact)
	if err != nil {
		return fmt.Errorf("failed to add memory fact: %w", err)
	}
	return nil
}

// MemoryFacts returns all stored facts for a user in insertion order.
func (s *SQLiteStore) MemoryFacts(ctx context.Context, userID string) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT fact FROM memory_facts WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memory facts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var facts []string
	for rows.Next() {
		var fact string
		if err := rows.Scan(&fact); err != nil {
			return nil, fmt.Errorf("failed to scan memory fact: %w", err)
		}
		facts = append(facts, fact)
	}
	return facts, rows.Err()
}
