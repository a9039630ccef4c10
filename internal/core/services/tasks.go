package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driving"
)

// Ensure taskService implements TaskService
var _ driving.TaskService = (*taskService)(nil)

// TaskServiceConfig holds configuration for the task forwarding service.
type TaskServiceConfig struct {
	// SessionStore resolves the session's Todoist access token.
	SessionStore driven.SessionStore

	// Provider is the upstream task API client.
	Provider driven.TaskProvider

	// Mirror receives best-effort upserts of normalized task data.
	Mirror driven.TaskMirror

	// Logger records swallowed mirror failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// taskService forwards task operations to the provider and mirrors task
// data into the core service.
type taskService struct {
	sessions driven.SessionStore
	provider driven.TaskProvider
	mirror   driven.TaskMirror
	logger   *slog.Logger
}

// NewTaskService creates a new task forwarding service.
func NewTaskService(cfg TaskServiceConfig) driving.TaskService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		sessions: cfg.SessionStore,
		provider: cfg.Provider,
		mirror:   cfg.Mirror,
		logger:   logger,
	}
}

// ListTasks forwards the query upstream, then mirrors each returned task.
// Mirror failures are logged and dropped; the list is returned as-is.
func (s *taskService) ListTasks(ctx context.Context, sessionID string, query domain.TaskQuery) (json.RawMessage, error) {
	token, err := requireToken(ctx, s.sessions, sessionID, domain.ProviderTodoist)
	if err != nil {
		return nil, err
	}

	list, err := s.provider.ListTasks(ctx, token, query.Values())
	if err != nil {
		return nil, err
	}

	var tasks []domain.CoreTask
	if err := json.Unmarshal(list, &tasks); err != nil {
		s.logger.Warn("skipping core mirror, unexpected task list shape", "error", err)
		return list, nil
	}
	for i := range tasks {
		s.mirrorTask(ctx, &tasks[i])
	}

	return list, nil
}

// CreateTask validates the payload, forwards the create upstream and
// mirrors the created task. Only the primary create failure is surfaced.
func (s *taskService) CreateTask(ctx context.Context, sessionID string, payload map[string]any) (json.RawMessage, error) {
	token, err := requireToken(ctx, s.sessions, sessionID, domain.ProviderTodoist)
	if err != nil {
		return nil, err
	}

	fields, err := domain.FilterTaskFields(payload)
	if err != nil {
		return nil, err
	}

	created, err := s.provider.CreateTask(ctx, token, fields)
	if err != nil {
		return nil, err
	}

	var task domain.CoreTask
	if err := json.Unmarshal(created, &task); err != nil {
		s.logger.Warn("skipping core mirror, unexpected created task shape", "error", err)
		return created, nil
	}
	s.mirrorTask(ctx, &task)

	return created, nil
}

// ListProjects forwards the project listing upstream.
func (s *taskService) ListProjects(ctx context.Context, sessionID string) (json.RawMessage, error) {
	token, err := requireToken(ctx, s.sessions, sessionID, domain.ProviderTodoist)
	if err != nil {
		return nil, err
	}
	return s.provider.ListProjects(ctx, token)
}

// ListSections forwards the section listing upstream, optionally scoped
// to one project.
func (s *taskService) ListSections(ctx context.Context, sessionID, projectID string) (json.RawMessage, error) {
	token, err := requireToken(ctx, s.sessions, sessionID, domain.ProviderTodoist)
	if err != nil {
		return nil, err
	}
	return s.provider.ListSections(ctx, token, projectID)
}

// mirrorTask upserts one task into the core service. Failures are logged
// and swallowed so the primary response is never affected.
func (s *taskService) mirrorTask(ctx context.Context, task *domain.CoreTask) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.UpsertTask(ctx, task); err != nil {
		s.logger.Warn("core mirror upsert failed", "task_id", task.ID, "error", err)
	}
}
