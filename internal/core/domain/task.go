package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// allowedTaskFields is the set of fields that may be forwarded to the
// task provider on create. Anything else is dropped before the request
// leaves this process.
var allowedTaskFields = map[string]struct{}{
	"content":      {},
	"description":  {},
	"project_id":   {},
	"section_id":   {},
	"parent_id":    {},
	"order":        {},
	"labels":       {},
	"priority":     {},
	"due_string":   {},
	"due_date":     {},
	"due_datetime": {},
	"assignee_id":  {},
}

// FilterTaskFields validates a create-task payload and strips every field
// outside the allow-list. content is mandatory and must be non-empty.
func FilterTaskFields(payload map[string]any) (map[string]any, error) {
	content, _ := payload["content"].(string)
	if content == "" {
		return nil, fmt.Errorf("%w: `content` is required", ErrValidation)
	}

	filtered := make(map[string]any, len(payload))
	for k, v := range payload {
		if _, ok := allowedTaskFields[k]; ok {
			filtered[k] = v
		}
	}
	return filtered, nil
}

// CoreTask is the normalized projection mirrored into the core service.
// The field set matches what the core upsert endpoint accepts.
type CoreTask struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Priority  int             `json:"priority"`
	ProjectID string          `json:"project_id"`
	Labels    []string        `json:"labels"`
	Due       json.RawMessage `json:"due,omitempty"`
}

// TaskQuery carries the list-tasks filters forwarded to the provider.
type TaskQuery struct {
	Filter    string
	ProjectID string
	SectionID string
	Label     string
	IDs       []string
	Lang      string
}

// Values encodes the query as provider query parameters. IDs are joined
// by comma per the Todoist REST contract.
func (q TaskQuery) Values() url.Values {
	v := url.Values{}
	if q.Filter != "" {
		v.Set("filter", q.Filter)
	}
	if q.ProjectID != "" {
		v.Set("project_id", q.ProjectID)
	}
	if q.SectionID != "" {
		v.Set("section_id", q.SectionID)
	}
	if q.Label != "" {
		v.Set("label", q.Label)
	}
	if len(q.IDs) > 0 {
		v.Set("ids", strings.Join(q.IDs, ","))
	}
	if q.Lang != "" {
		v.Set("lang", q.Lang)
	}
	return v
}
