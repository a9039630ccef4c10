package driven

import (
	"context"
	"encoding/json"
	"net/url"
)

// TaskProvider is a stateless client for the upstream task API. Every
// method issues exactly one HTTP call with the supplied bearer token and
// returns the raw JSON body on success or *domain.UpstreamError on a
// non-success status. No retries, no caching.
type TaskProvider interface {
	CreateTask(ctx context.Context, token string, fields map[string]any) (json.RawMessage, error)
	ListTasks(ctx context.Context, token string, query url.Values) (json.RawMessage, error)
	ListProjects(ctx context.Context, token string) (json.RawMessage, error)
	ListSections(ctx context.Context, token, projectID string) (json.RawMessage, error)
}
