package driven

import (
	"context"
	"encoding/json"
)

// PageProvider is a stateless client for the upstream document API.
// Same contract as TaskProvider: one attempt per call, raw JSON through,
// *domain.UpstreamError on failure.
type PageProvider interface {
	Search(ctx context.Context, token, query string) (json.RawMessage, error)
	CreatePage(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error)
}
