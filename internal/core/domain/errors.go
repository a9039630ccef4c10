package domain

import (
	"errors"
	"fmt"
)

// Domain errors - used across all layers
var (
	// ErrMissingParameter indicates a required request parameter is absent
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidState indicates the OAuth callback state did not match the stored nonce
	ErrInvalidState = errors.New("invalid state")

	// ErrUnauthorized indicates no provider token is present in the session
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbiddenCSRF indicates a missing or mismatched anti-forgery token
	ErrForbiddenCSRF = errors.New("bad csrf token")

	// ErrValidation indicates the request payload failed validation
	ErrValidation = errors.New("invalid input")

	// ErrNotFound indicates the requested session value was not found
	ErrNotFound = errors.New("not found")
)

// UpstreamError carries a provider's failure response to the request
// boundary, where status and body are proxied verbatim. Timeouts and
// token-exchange failures are reported the same way.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Body)
}
