package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
)

// Ensure OAuthHandler implements the interface.
var _ driven.OAuthHandler = (*OAuthHandler)(nil)

const (
	defaultAuthURL  = "https://api.notion.com/v1/oauth/authorize"
	defaultTokenURL = "https://api.notion.com/v1/oauth/token"
)

// OAuthHandler handles the authorization-code flow for Notion.
type OAuthHandler struct {
	httpClient *http.Client
	authURL    string
	tokenURL   string
}

// NewOAuthHandler creates a new Notion OAuth handler.
func NewOAuthHandler() *OAuthHandler {
	return &OAuthHandler{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		authURL:    defaultAuthURL,
		tokenURL:   defaultTokenURL,
	}
}

// BuildAuthURL constructs the Notion OAuth authorization URL. Notion has
// no scope string; access is granted per workspace by the owner.
func (h *OAuthHandler) BuildAuthURL(clientID, redirectURI, state string) string {
	params := url.Values{
		"client_id":     {clientID},
		"response_type": {"code"},
		"owner":         {"user"},
		"state":         {state},
		"redirect_uri":  {redirectURI},
	}
	return h.authURL + "?" + params.Encode()
}

// ExchangeCode exchanges an authorization code for an access token.
func (h *OAuthHandler) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error) {
	params := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"code":          {code},
		"redirect_uri":  {redirectURI},
	}

	req, err := http.NewRequestWithContext(ctx, "POST", h.tokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", &domain.UpstreamError{Status: http.StatusBadGateway, Body: fmt.Sprintf("token exchange failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &domain.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var tokenResp struct {
		AccessToken   string `json:"access_token"`
		WorkspaceName string `json:"workspace_name"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", &domain.UpstreamError{Status: http.StatusBadRequest, Body: "no access_token in response"}
	}

	return tokenResp.AccessToken, nil
}
