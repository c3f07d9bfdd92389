package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the context for a single query execution.
// Its ID is threaded through observer events for tracing.
type Session struct {
	ID        string    // Unique query identifier (UUID)
	Table     string    // Table the query runs against
	Active    bool      // Whether execution is currently in flight
	StartTime time.Time // When execution began
}

// New creates a new session with a unique ID
func New(table string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Table:     table,
		Active:    true,
		StartTime: time.Now(),
	}
}

// Close marks the session as finished
func (s *Session) Close() {
	s.Active = false
}

// Elapsed returns the time since the session started
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
