package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driving"
)

// Ensure oauthService implements OAuthService
var _ driving.OAuthService = (*oauthService)(nil)

// stateEntropyBytes is the entropy behind every state nonce. 24 bytes
// encode to a 32 character URL-safe string.
const stateEntropyBytes = 24

// ProviderCredentials holds one provider's OAuth app configuration.
// Credentials are injected at construction, never compiled in.
type ProviderCredentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// OAuthServiceConfig holds configuration for the OAuth broker.
type OAuthServiceConfig struct {
	// SessionStore holds the per-session state nonces and tokens.
	SessionStore driven.SessionStore

	// Handlers maps each provider to its authorize/token-exchange adapter.
	Handlers map[domain.Provider]driven.OAuthHandler

	// Credentials maps each provider to its OAuth app credentials.
	Credentials map[domain.Provider]ProviderCredentials
}

// oauthService implements the OAuthService interface.
type oauthService struct {
	sessions    driven.SessionStore
	handlers    map[domain.Provider]driven.OAuthHandler
	credentials map[domain.Provider]ProviderCredentials
}

// NewOAuthService creates a new OAuth broker.
func NewOAuthService(cfg OAuthServiceConfig) driving.OAuthService {
	return &oauthService{
		sessions:    cfg.SessionStore,
		handlers:    cfg.Handlers,
		credentials: cfg.Credentials,
	}
}

// BeginFlow generates a state nonce, stores it under the provider-scoped
// session key and returns the provider's authorize URL.
func (s *oauthService) BeginFlow(ctx context.Context, sessionID string, provider domain.Provider) (string, error) {
	handler, creds, err := s.providerParts(provider)
	if err != nil {
		return "", err
	}

	state, err := generateToken(stateEntropyBytes)
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}

	if err := s.sessions.Set(ctx, sessionID, provider.StateKey(), state); err != nil {
		return "", fmt.Errorf("save oauth state: %w", err)
	}

	return handler.BuildAuthURL(creds.ClientID, creds.RedirectURI, state), nil
}

// CompleteFlow validates the callback, exchanges the code and stores the
// bearer token in the session.
func (s *oauthService) CompleteFlow(ctx context.Context, sessionID string, provider domain.Provider, code, state string) error {
	if code == "" || state == "" {
		return fmt.Errorf("%w: code and state are required", domain.ErrMissingParameter)
	}

	handler, creds, err := s.providerParts(provider)
	if err != nil {
		return err
	}

	stored, err := s.sessions.Get(ctx, sessionID, provider.StateKey())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get oauth state: %w", err)
	}

	// The nonce is single-use. Remove it before the comparison result is
	// known so neither a failed match nor a failed exchange can be retried
	// with the same state.
	if err := s.sessions.Delete(ctx, sessionID, provider.StateKey()); err != nil {
		return fmt.Errorf("clear oauth state: %w", err)
	}

	if stored == "" || stored != state {
		return domain.ErrInvalidState
	}

	token, err := handler.ExchangeCode(ctx, creds.ClientID, creds.ClientSecret, code, creds.RedirectURI)
	if err != nil {
		return err
	}

	if err := s.sessions.Set(ctx, sessionID, provider.TokenKey(), token); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	return nil
}

func (s *oauthService) providerParts(provider domain.Provider) (driven.OAuthHandler, ProviderCredentials, error) {
	handler, ok := s.handlers[provider]
	if !ok {
		return nil, ProviderCredentials{}, fmt.Errorf("%w: unknown provider %q", domain.ErrValidation, provider)
	}
	creds, ok := s.credentials[provider]
	if !ok {
		return nil, ProviderCredentials{}, fmt.Errorf("%w: no credentials for provider %q", domain.ErrValidation, provider)
	}
	return handler, creds, nil
}

// generateToken returns n bytes of entropy as a URL-safe string.
func generateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
