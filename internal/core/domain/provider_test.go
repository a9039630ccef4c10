package domain

import "testing"

func TestProviderKeys(t *testing.T) {
	if got := ProviderTodoist.TokenKey(); got != "todoist_access_token" {
		t.Errorf("unexpected todoist token key %q", got)
	}
	if got := ProviderNotion.TokenKey(); got != "notion_access_token" {
		t.Errorf("unexpected notion token key %q", got)
	}
	if got := ProviderTodoist.StateKey(); got != "oauth_state:todoist" {
		t.Errorf("unexpected todoist state key %q", got)
	}
	if ProviderTodoist.StateKey() == ProviderNotion.StateKey() {
		t.Error("state keys must be provider-scoped")
	}
}

func TestProviderValid(t *testing.T) {
	if !ProviderTodoist.Valid() || !ProviderNotion.Valid() {
		t.Error("known providers must be valid")
	}
	if Provider("github").Valid() {
		t.Error("unknown provider must be invalid")
	}
}
