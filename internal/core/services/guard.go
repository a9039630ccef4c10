package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
)

// requireToken returns the provider's access token from the session or
// domain.ErrUnauthorized. Pure session lookup, no network call.
func requireToken(ctx context.Context, sessions driven.SessionStore, sessionID string, provider domain.Provider) (string, error) {
	token, err := sessions.Get(ctx, sessionID, provider.TokenKey())
	if errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("%w: not connected to %s", domain.ErrUnauthorized, provider)
	}
	if err != nil {
		return "", fmt.Errorf("get access token: %w", err)
	}
	if token == "" {
		return "", fmt.Errorf("%w: not connected to %s", domain.ErrUnauthorized, provider)
	}
	return token, nil
}
