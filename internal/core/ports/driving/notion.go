package driving

import (
	"context"
	"encoding/json"
)

// NotionService forwards search and page creation to the document
// provider on behalf of an authenticated session.
type NotionService interface {
	Search(ctx context.Context, sessionID, query string) (json.RawMessage, error)
	CreatePage(ctx context.Context, sessionID string, body json.RawMessage) (json.RawMessage, error)
}
