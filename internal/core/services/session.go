package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driving"
)

// Ensure sessionService implements SessionService
var _ driving.SessionService = (*sessionService)(nil)

// csrfEntropyBytes matches the state nonce entropy.
const csrfEntropyBytes = 24

// sessionService owns the CSRF token lifecycle and logout.
type sessionService struct {
	sessions driven.SessionStore
}

// NewSessionService creates a new session service.
func NewSessionService(sessions driven.SessionStore) driving.SessionService {
	return &sessionService{sessions: sessions}
}

// Status lazily creates the CSRF token and reports provider connectivity.
func (s *sessionService) Status(ctx context.Context, sessionID string) (*driving.SessionStatus, error) {
	csrf, err := s.sessions.Get(ctx, sessionID, domain.SessionKeyCSRF)
	if errors.Is(err, domain.ErrNotFound) {
		csrf, err = generateToken(csrfEntropyBytes)
		if err != nil {
			return nil, fmt.Errorf("generate csrf token: %w", err)
		}
		if err := s.sessions.Set(ctx, sessionID, domain.SessionKeyCSRF, csrf); err != nil {
			return nil, fmt.Errorf("save csrf token: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("get csrf token: %w", err)
	}

	return &driving.SessionStatus{
		CSRF:            csrf,
		Authenticated:   s.hasToken(ctx, sessionID, domain.ProviderTodoist),
		NotionConnected: s.hasToken(ctx, sessionID, domain.ProviderNotion),
	}, nil
}

// RequireCSRF rejects the request unless the supplied header value exactly
// equals the session's token.
func (s *sessionService) RequireCSRF(ctx context.Context, sessionID, supplied string) error {
	expected, err := s.sessions.Get(ctx, sessionID, domain.SessionKeyCSRF)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrForbiddenCSRF
	}
	if err != nil {
		return fmt.Errorf("get csrf token: %w", err)
	}
	if expected == "" || supplied == "" || supplied != expected {
		return domain.ErrForbiddenCSRF
	}
	return nil
}

// Logout clears the provider tokens and the CSRF token.
func (s *sessionService) Logout(ctx context.Context, sessionID string) error {
	keys := []string{
		domain.ProviderTodoist.TokenKey(),
		domain.ProviderNotion.TokenKey(),
		domain.SessionKeyCSRF,
	}
	for _, key := range keys {
		if err := s.sessions.Delete(ctx, sessionID, key); err != nil {
			return fmt.Errorf("clear session key %s: %w", key, err)
		}
	}
	return nil
}

func (s *sessionService) hasToken(ctx context.Context, sessionID string, provider domain.Provider) bool {
	token, err := s.sessions.Get(ctx, sessionID, provider.TokenKey())
	return err == nil && token != ""
}
