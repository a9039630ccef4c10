package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessig1/life-goals-gateway/internal/core/ports/driving"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	handler    http.Handler
	version    string

	// Services
	sessionService driving.SessionService
	oauthService   driving.OAuthService
	taskService    driving.TaskService
	notionService  driving.NotionService

	frontendBase string
}

// Config holds server configuration
type Config struct {
	Host    string
	Port    int
	Version string

	// FrontendBase is the SPA origin the OAuth callbacks redirect back to.
	FrontendBase string

	// CORSOrigins is the exact-match origin allow-list.
	CORSOrigins []string

	// SessionSecret signs the session cookie.
	SessionSecret string

	// SameSiteNone switches the session cookie to SameSite=None (and
	// Secure) for cross-origin deployments.
	SameSiteNone bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8000,
		Version:      "dev",
		FrontendBase: "http://localhost:5173",
		CORSOrigins:  []string{"http://localhost:5173"},
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	sessionService driving.SessionService,
	oauthService driving.OAuthService,
	taskService driving.TaskService,
	notionService driving.NotionService,
) *Server {
	s := &Server{
		router:         http.NewServeMux(),
		version:        cfg.Version,
		sessionService: sessionService,
		oauthService:   oauthService,
		taskService:    taskService,
		notionService:  notionService,
		frontendBase:   cfg.FrontendBase,
	}

	s.setupRoutes()

	// Middleware chain, outermost first: recovery, logging, CORS, session.
	session := NewSessionMiddleware(NewCookieCodec(cfg.SessionSecret, cfg.SameSiteNone))
	cors := NewCORSMiddleware(cfg.CORSOrigins)
	logging := NewLoggingMiddleware()
	recovery := NewRecoveryMiddleware()
	s.handler = recovery.Handler(logging.Handler(cors.Handler(session.Handler(s.router))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	csrf := NewCSRFMiddleware(s.sessionService)

	// Health endpoint (no session required)
	s.router.HandleFunc("GET /health", s.handleHealth)

	// OAuth flow endpoints (public; the callback is reached by a
	// provider-initiated redirect)
	s.router.HandleFunc("GET /api/login", s.handleLogin)
	s.router.HandleFunc("GET /api/oauth/callback", s.handleOAuthCallback)
	s.router.HandleFunc("GET /api/notion/connect", s.handleNotionConnect)
	s.router.HandleFunc("GET /api/notion/callback", s.handleNotionCallback)

	// Session endpoints
	s.router.HandleFunc("GET /api/session", s.handleSession)
	s.router.Handle("POST /api/logout",
		csrf.Require(http.HandlerFunc(s.handleLogout)))

	// Task endpoints (Todoist token required, enforced in the service)
	s.router.HandleFunc("GET /api/tasks", s.handleListTasks)
	s.router.HandleFunc("GET /api/projects", s.handleListProjects)
	s.router.HandleFunc("GET /api/sections", s.handleListSections)
	s.router.Handle("POST /api/create_task",
		csrf.Require(http.HandlerFunc(s.handleCreateTask)))

	// Notion endpoints (Notion token required, enforced in the service)
	s.router.Handle("POST /api/notion/search",
		csrf.Require(http.HandlerFunc(s.handleNotionSearch)))
	s.router.Handle("POST /api/notion/pages",
		csrf.Require(http.HandlerFunc(s.handleNotionCreatePage)))
}

// Handler returns the fully composed handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
