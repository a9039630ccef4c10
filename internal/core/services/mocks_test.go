package services

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
)

// mockSessionStore implements driven.SessionStore for testing
type mockSessionStore struct {
	data map[string]map[string]string
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{data: make(map[string]map[string]string)}
}

func (m *mockSessionStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	session, ok := m.data[sessionID]
	if !ok {
		return "", domain.ErrNotFound
	}
	val, ok := session[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return val, nil
}

func (m *mockSessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	session, ok := m.data[sessionID]
	if !ok {
		session = make(map[string]string)
		m.data[sessionID] = session
	}
	session[key] = value
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, sessionID, key string) error {
	if session, ok := m.data[sessionID]; ok {
		delete(session, key)
	}
	return nil
}

func (m *mockSessionStore) Destroy(ctx context.Context, sessionID string) error {
	delete(m.data, sessionID)
	return nil
}

// mockOAuthHandler implements driven.OAuthHandler for testing
type mockOAuthHandler struct {
	exchangeFn    func(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error)
	exchangeCalls int
}

func (m *mockOAuthHandler) BuildAuthURL(clientID, redirectURI, state string) string {
	v := url.Values{
		"client_id":    {clientID},
		"state":        {state},
		"redirect_uri": {redirectURI},
	}
	return "https://provider.example/authorize?" + v.Encode()
}

func (m *mockOAuthHandler) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (string, error) {
	m.exchangeCalls++
	if m.exchangeFn != nil {
		return m.exchangeFn(ctx, clientID, clientSecret, code, redirectURI)
	}
	return "test-access-token", nil
}

// mockTaskProvider implements driven.TaskProvider for testing
type mockTaskProvider struct {
	createFn       func(ctx context.Context, token string, fields map[string]any) (json.RawMessage, error)
	listFn         func(ctx context.Context, token string, query url.Values) (json.RawMessage, error)
	createCalls    int
	listCalls      int
	lastCreated    map[string]any
	projectsCalls  int
	sectionsCalls  int
}

func (m *mockTaskProvider) CreateTask(ctx context.Context, token string, fields map[string]any) (json.RawMessage, error) {
	m.createCalls++
	m.lastCreated = fields
	if m.createFn != nil {
		return m.createFn(ctx, token, fields)
	}
	return json.RawMessage(`{"id":"1","content":"x","priority":1,"project_id":"p1","labels":[]}`), nil
}

func (m *mockTaskProvider) ListTasks(ctx context.Context, token string, query url.Values) (json.RawMessage, error) {
	m.listCalls++
	if m.listFn != nil {
		return m.listFn(ctx, token, query)
	}
	return json.RawMessage(`[]`), nil
}

func (m *mockTaskProvider) ListProjects(ctx context.Context, token string) (json.RawMessage, error) {
	m.projectsCalls++
	return json.RawMessage(`[]`), nil
}

func (m *mockTaskProvider) ListSections(ctx context.Context, token, projectID string) (json.RawMessage, error) {
	m.sectionsCalls++
	return json.RawMessage(`[]`), nil
}

// mockTaskMirror implements driven.TaskMirror for testing
type mockTaskMirror struct {
	upsertFn    func(ctx context.Context, task *domain.CoreTask) error
	upsertCalls int
	upserted    []*domain.CoreTask
}

func (m *mockTaskMirror) UpsertTask(ctx context.Context, task *domain.CoreTask) error {
	m.upsertCalls++
	m.upserted = append(m.upserted, task)
	if m.upsertFn != nil {
		return m.upsertFn(ctx, task)
	}
	return nil
}

// mockPageProvider implements driven.PageProvider for testing
type mockPageProvider struct {
	searchFn     func(ctx context.Context, token, query string) (json.RawMessage, error)
	createPageFn func(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error)
	searchCalls  int
	createCalls  int
}

func (m *mockPageProvider) Search(ctx context.Context, token, query string) (json.RawMessage, error) {
	m.searchCalls++
	if m.searchFn != nil {
		return m.searchFn(ctx, token, query)
	}
	return json.RawMessage(`{"results":[]}`), nil
}

func (m *mockPageProvider) CreatePage(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	m.createCalls++
	if m.createPageFn != nil {
		return m.createPageFn(ctx, token, body)
	}
	return json.RawMessage(`{"object":"page"}`), nil
}

// Interface compliance for the mocks
var (
	_ driven.SessionStore = (*mockSessionStore)(nil)
	_ driven.OAuthHandler = (*mockOAuthHandler)(nil)
	_ driven.TaskProvider = (*mockTaskProvider)(nil)
	_ driven.TaskMirror   = (*mockTaskMirror)(nil)
	_ driven.PageProvider = (*mockPageProvider)(nil)
)
