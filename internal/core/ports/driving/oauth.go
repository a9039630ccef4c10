package driving

import (
	"context"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
)

// OAuthService drives the three-legged authorization-code flow for a
// named provider against the caller's session.
type OAuthService interface {
	// BeginFlow stores a fresh state nonce in the session and returns the
	// provider's authorize URL to redirect the browser to. No network call.
	BeginFlow(ctx context.Context, sessionID string, provider domain.Provider) (string, error)

	// CompleteFlow validates the callback parameters against the stored
	// nonce, exchanges the code for an access token and stores the token
	// in the session. The nonce is single-use: it is removed before the
	// comparison result is known, so a failed attempt cannot be replayed.
	CompleteFlow(ctx context.Context, sessionID string, provider domain.Provider, code, state string) error
}
