package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionCookieName = "session"
	employeeIDCtxKey  = ctxKey("employeeID")
)

// SessionTTL bounds both the cookie and the server-side session entry.
const SessionTTL = 14 * 24 * time.Hour

// SessionLookup resolves a verified session token to an employee id.
// Set it during app bootstrap via SetSessionLookup. If nil, no request is
// ever authenticated.
type SessionLookup func(ctx context.Context, token string) (uint, bool)

var lookup SessionLookup

// SetSessionLookup configures the global lookup used by Middleware.
func SetSessionLookup(l SessionLookup) { lookup = l }

// Secret returns SESSION_SECRET or default dev value.
func Secret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "devsessionsecret"
}

// NewToken mints an opaque session token.
func NewToken() string { return uuid.NewString() }

func sign(token string) string {
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie carrying the session token.
func CreateSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token + "." + sign(token),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(SessionTTL),
	})
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie signature and returns the raw token.
// The token still has to resolve through the session store to count as a
// live session; a replayed cookie after sign-out verifies here but fails
// the lookup.
func ParseSession(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return "", false
	}
	token, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(sign(token))) {
		return "", false
	}
	return token, true
}

// WithEmployeeID stores the employee id in context.
func WithEmployeeID(ctx context.Context, employeeID uint) context.Context {
	return context.WithValue(ctx, employeeIDCtxKey, employeeID)
}

// EmployeeIDFromContext extracts the employee id.
func EmployeeIDFromContext(ctx context.Context) (uint, bool) {
	v := ctx.Value(employeeIDCtxKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Middleware attaches the employee id to the request context when the
// cookie verifies and the session is still active.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := ParseSession(r); ok && lookup != nil {
			if id, active := lookup(r.Context(), token); active {
				r = r.WithContext(WithEmployeeID(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth returns 401 JSON when no authenticated employee is attached.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := EmployeeIDFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"unauthorized"}`)
			return
		}
		next.ServeHTTP(w, r)
	})
}
