package memory

import (
	"context"
	"sync"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-process driven.SessionStore used when no Redis
// URL is configured. Sessions hold no durable state, so losing them on
// restart only forces a re-login.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewSessionStore creates a new in-memory SessionStore
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]map[string]string)}
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return "", domain.ErrNotFound
	}
	val, ok := session[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return val, nil
}

// Set writes a value for the session, creating the session if needed.
func (s *SessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = make(map[string]string)
		s.sessions[sessionID] = session
	}
	session[key] = value
	return nil
}

// Delete removes a key from the session. Missing keys are a no-op.
func (s *SessionStore) Delete(ctx context.Context, sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		delete(session, key)
	}
	return nil
}

// Destroy removes the whole session.
func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
