package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// sessionCookieName is the cookie carrying the signed session ID.
	sessionCookieName = "lg_session"

	// sessionCookieTTL matches the server-side session lifetime.
	sessionCookieTTL = 7 * 24 * time.Hour
)

// sessionClaims is the JWT payload inside the session cookie. The cookie
// carries only the session ID; every session value lives server-side.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CookieCodec signs and verifies the session cookie.
type CookieCodec struct {
	secret   []byte
	sameSite http.SameSite
	secure   bool
}

// NewCookieCodec creates a codec signing with the given session secret.
// With sameSiteNone the cookie is also marked Secure, since browsers
// reject SameSite=None cookies without it.
func NewCookieCodec(secret string, sameSiteNone bool) *CookieCodec {
	sameSite := http.SameSiteLaxMode
	secure := false
	if sameSiteNone {
		sameSite = http.SameSiteNoneMode
		secure = true
	}
	return &CookieCodec{
		secret:   []byte(secret),
		sameSite: sameSite,
		secure:   secure,
	}
}

// Read extracts and verifies the session ID from the request cookie.
func (c *CookieCodec) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", err
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.SessionID, nil
}

// Write signs the session ID and sets the cookie on the response.
func (c *CookieCodec) Write(w http.ResponseWriter, sessionID string) error {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionCookieTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sessionCookieTTL / time.Second),
		HttpOnly: true,
		SameSite: c.sameSite,
		Secure:   c.secure,
	})
	return nil
}
