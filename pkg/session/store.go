package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rtavil/salespipe/internal/logging"
	"github.com/rtavil/salespipe/pkg/domain"
	"github.com/rtavil/salespipe/pkg/ports"
)

// Store exposes session lifecycle operations over a pluggable backend.
// Updates merge partial state into the existing map; keys absent from the
// update are preserved. The store does not serialize concurrent
// read-modify-write cycles on the same session.
type Store struct {
	backend ports.SessionBackend
	logger  *slog.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger configures a logger for the Store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a session store backed by the given backend.
func New(backend ports.SessionBackend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns a fresh unique session identifier.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// Create initializes an empty session under id. If the id already exists the
// session is overwritten; that is logged as a warning, not an error. The
// store offers no collision-detection guarantee.
func (s *Store) Create(ctx context.Context, id string) (*domain.Session, error) {
	if _, err := s.backend.Load(ctx, id); err == nil {
		s.logger.Warn("session already exists, overwriting", "session_id", id)
	}

	sess := domain.NewSession(id)
	if err := s.backend.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("created session", "session_id", id)
	return sess, nil
}

// Get retrieves a session by id. Returns domain.ErrSessionNotFound when the
// id is unknown; that is a valid outcome the caller must handle.
func (s *Store) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.backend.Load(ctx, id)
}

// Update merges partial state into the session (shallow key overwrite) and
// refreshes UpdatedAt. An unknown id logs a warning and returns
// domain.ErrSessionNotFound; callers that require the session to exist must
// check for it.
func (s *Store) Update(ctx context.Context, id string, partial map[string]any) (*domain.Session, error) {
	sess, err := s.backend.Load(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Warn("attempted to update non-existent session", "session_id", id)
		}
		return nil, err
	}

	for k, v := range partial {
		sess.State[k] = v
	}
	sess.UpdatedAt = time.Now()

	if err := s.backend.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("updated session", "session_id", id)
	return sess, nil
}

// Delete removes the session. Returns true if it existed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := s.backend.Load(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		return false, err
	}
	s.logger.Info("deleted session", "session_id", id)
	return true, nil
}

// List returns a snapshot of all sessions, order unspecified.
func (s *Store) List(ctx context.Context) ([]*domain.Session, error) {
	return s.backend.List(ctx)
}
