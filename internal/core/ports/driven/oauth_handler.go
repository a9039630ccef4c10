package driven

import "context"

// OAuthHandler drives the provider side of an authorization-code flow.
// Each provider adapter fixes its own authorize/token endpoints and scope.
type OAuthHandler interface {
	// BuildAuthURL constructs the provider's authorize URL with the
	// client_id, scope, state and redirect_uri query parameters.
	BuildAuthURL(clientID, redirectURI, state string) string

	// ExchangeCode exchanges an authorization code for a bearer token via
	// one form-encoded POST to the provider's token endpoint. A non-2xx
	// response or a body without an access token yields a
	// *domain.UpstreamError.
	ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error)
}
