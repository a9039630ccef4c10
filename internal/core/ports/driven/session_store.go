package driven

import "context"

// SessionStore is the server-side key/value store behind one browser
// session. The whole session is created implicitly on first write and
// holds only transient values (OAuth nonces, provider tokens, the CSRF
// token), so losing it forces nothing worse than a re-login.
type SessionStore interface {
	// Get returns the value stored under key, or domain.ErrNotFound.
	Get(ctx context.Context, sessionID, key string) (string, error)

	// Set writes a value for the session, creating the session if needed.
	Set(ctx context.Context, sessionID, key, value string) error

	// Delete removes a key from the session. Missing keys are a no-op.
	Delete(ctx context.Context, sessionID, key string) error

	// Destroy removes the whole session.
	Destroy(ctx context.Context, sessionID string) error
}
