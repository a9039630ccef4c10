package domain

import (
	"errors"
	"testing"
)

func TestFilterTaskFields_StripsUnknownFields(t *testing.T) {
	payload := map[string]any{
		"content":              "x",
		"content_unsafe_field": "y",
		"foo":                  "bar",
		"priority":             3,
	}

	filtered, err := FilterTaskFields(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := filtered["content_unsafe_field"]; ok {
		t.Error("expected content_unsafe_field to be stripped")
	}
	if _, ok := filtered["foo"]; ok {
		t.Error("expected foo to be stripped")
	}
	if filtered["content"] != "x" {
		t.Errorf("expected content %q, got %v", "x", filtered["content"])
	}
	if filtered["priority"] != 3 {
		t.Errorf("expected priority 3, got %v", filtered["priority"])
	}
}

func TestFilterTaskFields_AllAllowedFieldsPass(t *testing.T) {
	payload := map[string]any{
		"content":      "task",
		"description":  "desc",
		"project_id":   "p1",
		"section_id":   "s1",
		"parent_id":    "t0",
		"order":        1,
		"labels":       []string{"a"},
		"priority":     2,
		"due_string":   "today",
		"due_date":     "2026-01-01",
		"due_datetime": "2026-01-01T10:00:00Z",
		"assignee_id":  "u1",
	}

	filtered, err := FilterTaskFields(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != len(payload) {
		t.Errorf("expected %d fields to pass, got %d", len(payload), len(filtered))
	}
}

func TestFilterTaskFields_MissingContent(t *testing.T) {
	cases := []map[string]any{
		{},
		{"content": ""},
		{"content": 42},
		{"description": "no content here"},
	}

	for _, payload := range cases {
		if _, err := FilterTaskFields(payload); !errors.Is(err, ErrValidation) {
			t.Errorf("payload %v: expected ErrValidation, got %v", payload, err)
		}
	}
}

func TestTaskQuery_Values(t *testing.T) {
	q := TaskQuery{
		Filter:    "today",
		ProjectID: "p1",
		IDs:       []string{"1", "2", "3"},
	}

	v := q.Values()
	if v.Get("filter") != "today" {
		t.Errorf("expected filter today, got %q", v.Get("filter"))
	}
	if v.Get("project_id") != "p1" {
		t.Errorf("expected project_id p1, got %q", v.Get("project_id"))
	}
	if v.Get("ids") != "1,2,3" {
		t.Errorf("expected ids joined by comma, got %q", v.Get("ids"))
	}
	if v.Get("section_id") != "" {
		t.Error("expected empty section_id to be omitted")
	}
}

func TestTaskQuery_Values_Empty(t *testing.T) {
	if v := (TaskQuery{}).Values(); len(v) != 0 {
		t.Errorf("expected no values for empty query, got %v", v)
	}
}
