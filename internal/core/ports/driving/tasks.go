package driving

import (
	"context"
	"encoding/json"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
)

// TaskService forwards task operations to the task provider and mirrors
// task data into the core service where the contract asks for it.
type TaskService interface {
	// ListTasks forwards the query to the provider and opportunistically
	// mirrors each returned task to the core service. Mirror failures are
	// logged and swallowed; they never affect the returned list.
	ListTasks(ctx context.Context, sessionID string, query domain.TaskQuery) (json.RawMessage, error)

	// CreateTask validates the payload, strips non-allow-listed fields,
	// forwards the create and mirrors the created task. A mirror failure
	// is logged but the primary result is still returned.
	CreateTask(ctx context.Context, sessionID string, payload map[string]any) (json.RawMessage, error)

	ListProjects(ctx context.Context, sessionID string) (json.RawMessage, error)
	ListSections(ctx context.Context, sessionID, projectID string) (json.RawMessage, error)
}
