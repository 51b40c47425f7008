package memory

import (
	"context"
	"sync"

	"github.com/rtavil/salespipe/pkg/domain"
)

// Store implements ports.SessionBackend in memory.
// Individual operations are safe for concurrent use, but the store offers no
// transactions: concurrent read-modify-write cycles on the same session can
// still interleave. It is intended for single-process, single-caller use.
type Store struct {
	data map[string]*domain.Session
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Session),
	}
}

// Save persists the session in memory.
func (s *Store) Save(ctx context.Context, sess *domain.Session) error {
	// Copy on write so the caller can't mutate stored state by pointer.
	copied := sess.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sess.ID] = copied
	return nil
}

// Load retrieves a session from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	// Copy on read for the same reason.
	return sess.Clone(), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns all sessions.
func (s *Store) List(ctx context.Context) ([]*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*domain.Session, 0, len(s.data))
	for _, sess := range s.data {
		sessions = append(sessions, sess.Clone())
	}
	return sessions, nil
}
