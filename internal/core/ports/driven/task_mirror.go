package driven

import (
	"context"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
)

// TaskMirror pushes normalized task projections into the internal core
// service. Callers treat every upsert as best-effort.
type TaskMirror interface {
	UpsertTask(ctx context.Context, task *domain.CoreTask) error
}
