// Package ledger implements the mutation engine for a user's financial
// snapshot: accounts, transactions, debts, and savings goals. Every operation
// is total over its inputs and applies atomically: the entity list and the
// affected balance change in the same step, or not at all. Failures are
// result values so the dispatcher can always turn them into a user-facing
// message without a recover path.
package ledger

import (
	"errors"
	"time"

	"github.com/thevaultapp/vault/internal/model"
)

// Business failure kinds. The dispatcher maps these to short human-readable
// messages; they never escape as panics.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTargetNotFound      = errors.New("target not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidTransfer     = errors.New("invalid transfer")
	ErrInsufficientFunds   = errors.New("insufficient funds")
)

// Ledger owns all mutation over one snapshot. It is not safe for concurrent
// use; the session serializes callers.
type Ledger struct {
	now    func() time.Time
	snap   *model.Snapshot
	nextID int64
}

// New creates a ledger over snap using the wall clock.
func New(snap *model.Snapshot) *Ledger {
	return NewWithClock(snap, time.Now)
}

// NewWithClock creates a ledger with an injected clock, used by tests for
// deterministic dates and ids.
func NewWithClock(snap *model.Snapshot, now func() time.Time) *Ledger {
	return &Ledger{
		snap: snap,
		now:  now,
		// Seeded from wall-clock millis so ids stay unique across sessions
		// against the same stored snapshot; strictly monotonic within one.
		nextID: now().UnixMilli(),
	}
}

// Snapshot exposes the underlying snapshot for read-only projections and
// persistence. Callers must not mutate it directly.
func (l *Ledger) Snapshot() *model.Snapshot {
	return l.snap
}

func (l *Ledger) newID() int64 {
	l.nextID++
	return l.nextID
}

func (l *Ledger) today() string {
	return l.now().Format("2006-01-02")
}
