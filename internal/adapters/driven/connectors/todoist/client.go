package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.TaskProvider = (*Client)(nil)

const defaultBaseURL = "https://api.todoist.com/rest/v2"

// Client calls the Todoist REST API with a bearer token. One attempt per
// call, bounded by the client timeout; no retries, no caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Todoist REST client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// CreateTask creates one task from already-filtered fields.
func (c *Client) CreateTask(ctx context.Context, token string, fields map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/tasks", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, token)
}

// ListTasks lists active tasks matching the query.
func (c *Client) ListTasks(ctx context.Context, token string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + "/tasks"
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req, token)
}

// ListProjects lists the user's projects.
func (c *Client) ListProjects(ctx context.Context, token string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req, token)
}

// ListSections lists sections, optionally scoped to one project.
func (c *Client) ListSections(ctx context.Context, token, projectID string) (json.RawMessage, error) {
	u := c.baseURL + "/sections"
	if projectID != "" {
		u += "?" + url.Values{"project_id": {projectID}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.do(req, token)
}

// do issues the request and returns the raw body on a success status or
// *domain.UpstreamError otherwise.
func (c *Client) do(req *http.Request, token string) (json.RawMessage, error) {
	req.Header.Set("Authorization", "Bearer "+token)

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
