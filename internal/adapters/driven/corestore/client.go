package corestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.TaskMirror = (*Client)(nil)

// secretHeader authenticates gateway calls to the core service.
const secretHeader = "X-Core-Secret"

// Client pushes normalized task projections into the internal core
// service. Callers treat every upsert as best-effort; the client itself
// still reports failures so they can be logged.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secret     string
}

// NewClient creates a new core service client.
func NewClient(baseURL, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
	}
}

// UpsertTask upserts one task projection.
func (c *Client) UpsertTask(ctx context.Context, task *domain.CoreTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("encode task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/internal/upsert/task", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(secretHeader, c.secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("core upsert responded %d", resp.StatusCode)
	}
	return nil
}
