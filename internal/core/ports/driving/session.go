package driving

import "context"

// SessionStatus is returned to the browser on GET /api/session.
type SessionStatus struct {
	CSRF            string `json:"csrf"`
	Authenticated   bool   `json:"authenticated"`
	NotionConnected bool   `json:"notion_connected"`
}

// SessionService owns the CSRF token lifecycle and logout.
type SessionService interface {
	// Status lazily creates the session's CSRF token and reports which
	// providers are connected. Idempotent until logout.
	Status(ctx context.Context, sessionID string) (*SessionStatus, error)

	// RequireCSRF compares the supplied header value against the session's
	// CSRF token. Any mismatch, including an absent token on either side,
	// fails with domain.ErrForbiddenCSRF.
	RequireCSRF(ctx context.Context, sessionID, supplied string) error

	// Logout clears the provider tokens and the CSRF token.
	Logout(ctx context.Context, sessionID string) error
}
