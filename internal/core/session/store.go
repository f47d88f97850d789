// Package session holds the single source of truth for "who is logged in
// and as what". The store has exactly one writer API surface and many
// readers; every mutation is persisted so the session survives restarts.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
)

// Store is the session state container. A zero balance-crossing adjustment
// is rejected, never silently ignored: the store enforces PointBalance >= 0
// as a hard invariant rather than trusting callers to disable buttons.
type Store struct {
	mu      sync.RWMutex
	current *domain.Session
	repo    ports.SessionRepository
	log     zerolog.Logger
}

// NewStore creates a Store backed by the given repository.
func NewStore(repo ports.SessionRepository, log zerolog.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Restore loads a previously persisted session, if any. A load failure
// degrades to the logged-out state instead of failing startup.
func (s *Store) Restore(ctx context.Context) {
	sess, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session restore failed, starting logged out")
		return
	}
	if sess == nil {
		return
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	s.log.Info().Str("session_id", sess.ID).Str("role", string(sess.Role)).Msg("session restored")
}

// Login replaces any existing session unconditionally with the given
// identity. The identity is trusted; it was validated upstream by the auth
// service. Calling Login twice with the same identity leaves exactly that
// identity in place.
func (s *Store) Login(ctx context.Context, identity domain.Session) {
	s.mu.Lock()
	snapshot := identity
	s.current = &snapshot
	s.mu.Unlock()

	s.persist(ctx, &snapshot)
	s.log.Info().Str("session_id", identity.ID).Str("role", string(identity.Role)).Msg("session opened")
}

// Logout clears the session to the absent state and removes the persisted
// copy. Idempotent: logging out with no active session is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	had := s.current != nil
	s.current = nil
	s.mu.Unlock()

	if !had {
		return
	}
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	s.log.Info().Msg("session closed")
}

// Current returns a copy of the active session, or false when logged out.
func (s *Store) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}

// AdjustBalance applies a signed delta to the active session's point
// balance and returns the new balance. With no active session the call is
// a no-op and never creates a partial session. A delta that would take the
// balance below zero is rejected with ErrInsufficientPoints and leaves the
// balance untouched.
func (s *Store) AdjustBalance(ctx context.Context, delta int) (int, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return 0, nil
	}
	next := s.current.PointBalance + delta
	if next < 0 {
		balance := s.current.PointBalance
		s.mu.Unlock()
		return balance, domain.ErrInsufficientPoints
	}
	s.current.PointBalance = next
	snapshot := *s.current
	s.mu.Unlock()

	s.persist(ctx, &snapshot)
	return next, nil
}

// persist writes the session through the repository. Write failures are
// recoverable: the in-memory session stays valid and the worst case is a
// logged-out state on the next load.
func (s *Store) persist(ctx context.Context, sess *domain.Session) {
	if err := s.repo.Save(ctx, sess); err != nil {
		s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to persist session")
	}
}
