package notion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
)

func TestSearch_SendsVersionedRequest(t *testing.T) {
	var gotVersion, gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/search" {
			t.Errorf("expected POST /search, got %s %s", r.Method, r.URL.Path)
		}
		gotVersion = r.Header.Get("Notion-Version")
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	if _, err := c.Search(context.Background(), "ntok", "life goals"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotVersion != notionVersion {
		t.Errorf("expected Notion-Version %s, got %s", notionVersion, gotVersion)
	}
	if gotAuth != "Bearer ntok" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotBody["query"] != "life goals" {
		t.Errorf("expected query in body, got %v", gotBody)
	}
}

func TestCreatePage_ForwardsBodyVerbatim(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pages" {
			t.Errorf("expected /pages, got %s", r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"object":"page","id":"p1"}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	body := json.RawMessage(`{"parent":{"page_id":"root"},"properties":{}}`)
	created, err := c.CreatePage(context.Background(), "ntok", body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(gotBody) != string(body) {
		t.Errorf("expected body forwarded verbatim, got %s", gotBody)
	}
	if len(created) == 0 {
		t.Error("expected the created page body returned")
	}
}

func TestPost_NonSuccessBecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"body failed validation"}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	_, err := c.CreatePage(context.Background(), "ntok", json.RawMessage(`{}`))
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusBadRequest || upstream.Body != `{"message":"body failed validation"}` {
		t.Errorf("expected the upstream status and body, got %d %s", upstream.Status, upstream.Body)
	}
}
