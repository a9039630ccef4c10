package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.PageProvider = (*Client)(nil)

const (
	defaultBaseURL = "https://api.notion.com/v1"

	// notionVersion pins the API revision every request is made against.
	notionVersion = "2022-06-28"
)

// Client calls the Notion API with a bearer token. One attempt per call,
// bounded by the client timeout.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Notion API client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// Search runs a free-text search across the pages shared with the
// integration.
func (c *Client) Search(ctx context.Context, token, query string) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	return c.post(ctx, token, "/search", payload)
}

// CreatePage forwards the page-creation body as-is.
func (c *Client) CreatePage(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, token, "/pages", body)
}

func (c *Client) post(ctx context.Context, token, path string, payload []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Status: http.StatusBadGateway, Body: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	return json.RawMessage(body), nil
}
