package domain

import "time"

// Session is the unit of state shared between pipeline stages.
// State is a flat namespace: stages merge partial maps into it and
// existing keys not present in an update are preserved.
type Session struct {
	ID        string         `json:"session_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	State     map[string]any `json:"state"`
}

// NewSession creates an empty session. CreatedAt and UpdatedAt start equal.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		State:     make(map[string]any),
	}
}

// Clone returns a copy with its own state map so callers can't mutate
// store-held sessions through a shared pointer. Nested values are shared.
func (s *Session) Clone() *Session {
	out := *s
	out.State = make(map[string]any, len(s.State))
	for k, v := range s.State {
		out.State[k] = v
	}
	return &out
}
