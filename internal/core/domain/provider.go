package domain

// Provider identifies an upstream OAuth provider.
type Provider string

const (
	ProviderTodoist Provider = "todoist"
	ProviderNotion  Provider = "notion"
)

// SessionKeyCSRF is the session key holding the anti-forgery token.
const SessionKeyCSRF = "csrf"

// StateKey returns the session key holding the provider's OAuth state nonce.
// The nonce exists only between the begin-flow redirect and the callback.
func (p Provider) StateKey() string {
	return "oauth_state:" + string(p)
}

// TokenKey returns the session key holding the provider's access token.
func (p Provider) TokenKey() string {
	return string(p) + "_access_token"
}

// Valid reports whether the provider is one this gateway knows about.
func (p Provider) Valid() bool {
	return p == ProviderTodoist || p == ProviderNotion
}
