package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleHealth reports process liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// OAuth endpoints

// handleLogin starts the Todoist authorization-code flow and redirects
// the browser to the provider.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.beginFlow(w, r, domain.ProviderTodoist)
}

// handleOAuthCallback completes the Todoist flow and sends the browser
// back to the frontend.
func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	s.completeFlow(w, r, domain.ProviderTodoist)
}

// handleNotionConnect starts the Notion authorization-code flow.
func (s *Server) handleNotionConnect(w http.ResponseWriter, r *http.Request) {
	s.beginFlow(w, r, domain.ProviderNotion)
}

// handleNotionCallback completes the Notion flow.
func (s *Server) handleNotionCallback(w http.ResponseWriter, r *http.Request) {
	s.completeFlow(w, r, domain.ProviderNotion)
}

func (s *Server) beginFlow(w http.ResponseWriter, r *http.Request, provider domain.Provider) {
	authURL, err := s.oauthService.BeginFlow(r.Context(), GetSessionID(r.Context()), provider)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}

func (s *Server) completeFlow(w http.ResponseWriter, r *http.Request, provider domain.Provider) {
	q := r.URL.Query()
	err := s.oauthService.CompleteFlow(r.Context(), GetSessionID(r.Context()), provider, q.Get("code"), q.Get("state"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	http.Redirect(w, r, s.frontendBase+"/auth/complete", http.StatusFound)
}

// Session endpoints

// handleSession lazily creates the CSRF token and reports which providers
// are connected.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	status, err := s.sessionService.Status(r.Context(), GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// handleLogout clears the provider tokens and the CSRF token. The CSRF
// middleware has already validated the request.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessionService.Logout(r.Context(), GetSessionID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Task endpoints

// handleListTasks forwards the list query to Todoist.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.TaskQuery{
		Filter:    q.Get("filter"),
		ProjectID: q.Get("project_id"),
		SectionID: q.Get("section_id"),
		Label:     q.Get("label"),
		IDs:       q["ids"],
		Lang:      q.Get("lang"),
	}

	list, err := s.taskService.ListTasks(r.Context(), GetSessionID(r.Context()), query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, list)
}

// handleCreateTask validates and forwards a task creation.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.taskService.CreateTask(r.Context(), GetSessionID(r.Context()), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, created)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.taskService.ListProjects(r.Context(), GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, projects)
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := s.taskService.ListSections(r.Context(), GetSessionID(r.Context()), r.URL.Query().Get("project_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, sections)
}

// Notion endpoints

// handleNotionSearch forwards a free-text search.
func (s *Server) handleNotionSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.notionService.Search(r.Context(), GetSessionID(r.Context()), req.Query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, result)
}

// handleNotionCreatePage forwards the page-creation body untouched.
func (s *Server) handleNotionCreatePage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := s.notionService.CreatePage(r.Context(), GetSessionID(r.Context()), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeRaw(w, http.StatusOK, page)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeRaw passes an upstream JSON body through unchanged.
func writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeServiceError maps domain errors to HTTP statuses at the request
// boundary. Upstream failures are proxied verbatim for easier debugging.
func writeServiceError(w http.ResponseWriter, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrMissingParameter),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbiddenCSRF):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &upstream):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(upstream.Status)
		_, _ = io.WriteString(w, upstream.Body)
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
