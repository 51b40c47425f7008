package ports

import (
	"context"

	"github.com/rtavil/salespipe/pkg/domain"
)

// SessionBackend defines the interface for keeping session state.
// The default backend is in-memory and process-local; a networked backend
// (e.g. Redis) can be swapped in without touching the stages.
type SessionBackend interface {
	// Save persists the session, keyed by its ID.
	Save(ctx context.Context, sess *domain.Session) error

	// Load retrieves a session by ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes the session for the given ID.
	Delete(ctx context.Context, id string) error

	// List returns a snapshot of all sessions, order unspecified.
	List(ctx context.Context) ([]*domain.Session, error)
}
