package session

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxActionEntries bounds the in-memory action history.
const maxActionEntries = 50

// ActionEntry records one dispatched action for assistant context.
type ActionEntry struct {
	Timestamp time.Time
	Action    string
	Detail    string
}

// ActionLog is a bounded, newest-last log of recent actions. It lets the
// assistant answer "what just happened" without replaying the ledger.
type ActionLog struct {
	mu      sync.Mutex
	entries []ActionEntry
}

// Record appends an action, evicting the oldest entry once the log is full.
func (l *ActionLog) Record(action, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, ActionEntry{
		Timestamp: time.Now(),
		Action:    action,
		Detail:    detail,
	})
	if len(l.entries) > maxActionEntries {
		l.entries = l.entries[len(l.entries)-maxActionEntries:]
	}
}

// Recent returns up to n entries, newest last.
func (l *ActionLog) Recent(n int) []ActionEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]ActionEntry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Summary renders up to n recent entries as prompt-friendly lines.
func (l *ActionLog) Summary(n int) string {
	entries := l.Recent(n)
	if len(entries) == 0 {
		return "No recent activity."
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s: %s\n", e.Timestamp.Format("15:04:05"), e.Action, e.Detail)
	}
	return strings.TrimRight(b.String(), "\n")
}
