package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/babitas-kitchen/storefront/internal/checkout"
	"github.com/google/uuid"
)

const DefaultIdleTimeout = 30 * time.Minute

// Options configures sessions created by a Store.
type Options struct {
	IdleTimeout     time.Duration
	NotificationTTL time.Duration
	Checkout        checkout.Options
}

// Store keeps sessions in memory, keyed by id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewStore creates an empty store.
func NewStore(opts Options, logger *slog.Logger) *Store {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create starts a new session.
func (st *Store) Create() *Session {
	s := newSession(st.newID(), st.opts, st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Debug("session created", "session_id", s.ID)
	return s
}

// Get returns the session for id and marks it as active.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}

	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if ok {
		s.touch(st.now())
	}
	return s, ok
}

// GetOrCreate returns the session for id, or a new one when id is empty
// or unknown. created reports which happened.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}
	return st.Create(), true
}

// Delete closes and forgets the session for id.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

// Len is the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep closes sessions idle for longer than the idle timeout and
// returns how many were removed.
func (st *Store) Sweep() int {
	now := st.now()

	var expired []*Session
	st.mu.Lock()
	for id, s := range st.sessions {
		if s.idleSince(now) > st.opts.IdleTimeout {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Close()
		st.logger.Debug("session expired", "session_id", s.ID)
	}
	return len(expired)
}

// Run sweeps idle sessions until ctx is done, then closes every session.
func (st *Store) Run(ctx context.Context) {
	interval := st.opts.IdleTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			st.Close()
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				st.logger.Info("expired idle sessions", "count", n, "remaining", st.Len())
			}
		}
	}
}

// Close closes and removes every session.
func (st *Store) Close() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
