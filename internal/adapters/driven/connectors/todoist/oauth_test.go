package todoist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
)

func TestBuildAuthURL(t *testing.T) {
	h := NewOAuthHandler()

	raw := h.BuildAuthURL("client-1", "https://app.example/cb", "state-abc")

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("unparseable auth URL: %v", err)
	}
	if !strings.HasPrefix(raw, defaultAuthURL+"?") {
		t.Errorf("expected authorize endpoint, got %s", raw)
	}
	q := u.Query()
	if q.Get("client_id") != "client-1" {
		t.Errorf("expected client_id, got %s", q.Get("client_id"))
	}
	if q.Get("scope") != "data:read_write" {
		t.Errorf("expected data:read_write scope, got %s", q.Get("scope"))
	}
	if q.Get("state") != "state-abc" {
		t.Errorf("expected state, got %s", q.Get("state"))
	}
	if q.Get("redirect_uri") != "https://app.example/cb" {
		t.Errorf("expected redirect_uri, got %s", q.Get("redirect_uri"))
	}
}

func TestExchangeCode_Success(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("expected form content type, got %s", ct)
		}
		_ = r.ParseForm()
		gotForm = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"Bearer"}`))
	}))
	defer srv.Close()

	h := NewOAuthHandler()
	h.tokenURL = srv.URL

	token, err := h.ExchangeCode(context.Background(), "client-1", "secret-1", "code-1", "https://app.example/cb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("expected tok-123, got %s", token)
	}
	if gotForm.Get("client_id") != "client-1" || gotForm.Get("client_secret") != "secret-1" ||
		gotForm.Get("code") != "code-1" || gotForm.Get("redirect_uri") != "https://app.example/cb" {
		t.Errorf("unexpected exchange form: %v", gotForm)
	}
}

func TestExchangeCode_NonOKProxiedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"bad code"}`))
	}))
	defer srv.Close()

	h := NewOAuthHandler()
	h.tokenURL = srv.URL

	_, err := h.ExchangeCode(context.Background(), "client-1", "secret-1", "bad", "https://app.example/cb")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusForbidden {
		t.Errorf("expected 403, got %d", upstream.Status)
	}
	if upstream.Body != `{"error":"bad code"}` {
		t.Errorf("expected the upstream body verbatim, got %s", upstream.Body)
	}
}

func TestExchangeCode_MissingAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer srv.Close()

	h := NewOAuthHandler()
	h.tokenURL = srv.URL

	_, err := h.ExchangeCode(context.Background(), "client-1", "secret-1", "code-1", "https://app.example/cb")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) || upstream.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 for a token-less response, got %v", err)
	}
}

func TestExchangeCode_TransportError(t *testing.T) {
	h := NewOAuthHandler()
	h.tokenURL = "http://127.0.0.1:1"

	_, err := h.ExchangeCode(context.Background(), "client-1", "secret-1", "code-1", "https://app.example/cb")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) || upstream.Status != http.StatusBadGateway {
		t.Fatalf("expected 502 for a transport failure, got %v", err)
	}
}
