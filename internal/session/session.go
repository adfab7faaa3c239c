// Package session ties one user to one ledger snapshot. The session is the
// single writer: every mutation runs under its lock, and every successful
// mutation schedules an asynchronous snapshot save. There are no process-wide
// singletons; tests and multi-tenant servers can hold any number of sessions
// side by side.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/thevaultapp/vault/internal/common"
	"github.com/thevaultapp/vault/internal/ledger"
	"github.com/thevaultapp/vault/internal/model"
	"github.com/thevaultapp/vault/internal/service"
)

const saveTimeout = 10 * time.Second

// Session owns the in-memory ledger snapshot for one user.
type Session struct {
	store       service.Store
	ledger      *ledger.Ledger
	saveCh      chan struct{}
	done        chan struct{}
	userID      string
	actions     ActionLog
	wg          sync.WaitGroup
	mu          sync.Mutex
	saveMu      sync.Mutex
	lastSaveErr error
	closeOnce   sync.Once
}

// Open loads the user's snapshot and starts the write-behind saver. A load
// failure, including a corrupt stored payload, is logged and treated as
// "no prior state": the session starts fresh rather than crashing.
func Open(ctx context.Context, userID string, store service.Store) (*Session, error) {
	snap, err := store.LoadSnapshot(ctx, userID)
	if err != nil {
		common.LogError(err, "Failed to load snapshot, starting fresh", common.Fields{"user_id": userID})
		snap = nil
	}
	if snap == nil {
		snap = model.NewSnapshot(userID)
	}

	s := &Session{
		userID: userID,
		store:  store,
		ledger: ledger.New(snap),
		saveCh: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.saveLoop()
	return s, nil
}

// UserID returns the opaque user identifier this session is keyed by.
func (s *Session) UserID() string {
	return s.userID
}

// Mutate runs one mutation against the ledger under the session lock. On
// success it schedules a snapshot save; the save is fire-and-forget and its
// failure never rolls the mutation back.
func (s *Session) Mutate(fn func(*ledger.Ledger) error) error {
	s.mu.Lock()
	err := fn(s.ledger)
	s.mu.Unlock()

	if err == nil {
		s.scheduleSave()
	}
	return err
}

// View runs a read-only function against the ledger under the session lock.
// The callback must not retain pointers into the snapshot.
func (s *Session) View(fn func(*ledger.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger)
}

// RememberFact stores an assistant memory fact. Facts live outside the
// ledger snapshot and are written synchronously.
func (s *Session) RememberFact(ctx context.Context, fact string) error {
	return s.store.AddMemoryFact(ctx, s.userID, fact)
}

// MemoryFacts returns the assistant's long-term memory for this user.
func (s *Session) MemoryFacts(ctx context.Context) ([]string, error) {
	return s.store.MemoryFacts(ctx, s.userID)
}

// Actions exposes the session's recent-action log.
func (s *Session) Actions() *ActionLog {
	return &s.actions
}

// LastSaveError reports the most recent write-behind save failure, or nil
// when the last save succeeded. Presentation surfaces this instead of the
// failure disappearing into a log line.
func (s *Session) LastSaveError() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.lastSaveErr
}

// Flush performs a synchronous save of the current snapshot. Used on
// shutdown so the final state is not lost to a pending async save.
func (s *Session) Flush(ctx context.Context) error {
	err := s.save(ctx)
	s.setSaveErr(err)
	return err
}

// Close stops the saver and flushes the snapshot one last time.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		err = s.Flush(ctx)
	})
	return err
}

// scheduleSave coalesces save requests: one pending signal is enough, the
// next save writes the latest snapshot anyway.
func (s *Session) scheduleSave() {
	select {
	case s.saveCh <- struct{}{}:
	default:
	}
}

func (s *Session) saveLoop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case <-s.saveCh:
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			err := common.WithRetry(ctx, func() error { return s.save(ctx) }, common.RetryOptions{
				MaxAttempts:  2,
				InitialDelay: 250 * time.Millisecond,
			})
			cancel()
			s.setSaveErr(err)
			if err != nil {
				// Next write wins: the mutation stays committed in memory and
				// the next scheduled save retries with the newest snapshot.
				common.LogError(err, "Snapshot save failed", common.Fields{"user_id": s.userID})
			}
		}
	}
}

func (s *Session) save(ctx context.Context) error {
	s.mu.Lock()
	clone := s.ledger.Snapshot().Clone()
	s.mu.Unlock()

	return s.store.SaveSnapshot(ctx, s.userID, clone)
}

func (s *Session) setSaveErr(err error) {
	s.saveMu.Lock()
	s.lastSaveErr = err
	s.saveMu.Unlock()
}
