package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/jessig1/life-goals-gateway/internal/core/ports/driving"
)

// Context keys
type contextKey string

const sessionIDContextKey contextKey = "session_id"

// csrfHeader is the request header echoing the session's CSRF token on
// every state-mutating call.
const csrfHeader = "X-CSRF-Token"

// SessionMiddleware resolves the browser session from the signed cookie,
// minting a fresh session (and cookie) when none is presented.
type SessionMiddleware struct {
	codec *CookieCodec
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(codec *CookieCodec) *SessionMiddleware {
	return &SessionMiddleware{codec: codec}
}

// Handler wraps an http.Handler with session resolution.
func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := m.codec.Read(r)
		if err != nil || sessionID == "" {
			// New or tampered cookie either way: start a fresh session.
			sessionID = ksuid.New().String()
			if err := m.codec.Write(w, sessionID); err != nil {
				writeError(w, http.StatusInternalServerError, "failed to establish session")
				return
			}
		}

		ctx := context.WithValue(r.Context(), sessionIDContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID retrieves the session ID from the request context.
func GetSessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	sessionID, _ := ctx.Value(sessionIDContextKey).(string)
	return sessionID
}

// CSRFMiddleware guards state-mutating endpoints with the double-submit
// header check. It must run before any handler side effect.
type CSRFMiddleware struct {
	sessionService driving.SessionService
}

// NewCSRFMiddleware creates a new CSRFMiddleware
func NewCSRFMiddleware(sessionService driving.SessionService) *CSRFMiddleware {
	return &CSRFMiddleware{sessionService: sessionService}
}

// Require rejects the request with 403 unless the CSRF header matches the
// session's token.
func (m *CSRFMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := GetSessionID(r.Context())
		if err := m.sessionService.RequireCSRF(r.Context(), sessionID, r.Header.Get(csrfHeader)); err != nil {
			writeServiceError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logging middleware

// LoggingMiddleware logs HTTP requests
type LoggingMiddleware struct{}

// NewLoggingMiddleware creates a new LoggingMiddleware
func NewLoggingMiddleware() *LoggingMiddleware {
	return &LoggingMiddleware{}
}

// Handler wraps an http.Handler with request logging
func (m *LoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, rw.statusCode, duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Recovery middleware

// RecoveryMiddleware recovers from panics
type RecoveryMiddleware struct{}

// NewRecoveryMiddleware creates a new RecoveryMiddleware
func NewRecoveryMiddleware() *RecoveryMiddleware {
	return &RecoveryMiddleware{}
}

// Handler wraps an http.Handler with panic recovery
func (m *RecoveryMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CORS middleware

// CORSMiddleware handles CORS for the browser frontend. Requests carry
// the session cookie, so credentials are always allowed and the origin
// must match the allow-list exactly; no wildcard.
type CORSMiddleware struct {
	allowedOrigins []string
}

// NewCORSMiddleware creates a new CORSMiddleware
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	return &CORSMiddleware{allowedOrigins: allowedOrigins}
}

// Handler wraps an http.Handler with CORS headers
func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		allowed := false
		for _, o := range m.allowedOrigins {
			if o == origin {
				allowed = true
				break
			}
		}

		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+csrfHeader)
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
