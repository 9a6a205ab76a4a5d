package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"quoteboard/internal/auth"
)

// Context keys for storing caller identity
type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// SessionName is the cookie name used for the session token.
const SessionName = "quoteboard_session"

// Session value keys.
const (
	SessionUserIDKey   = "user_id"
	SessionUsernameKey = "username"
)

// AuthMiddleware resolves caller identity for protected routes. It accepts
// either an Authorization: Bearer token or the signed session cookie and
// injects the resolved user id and username into the request context.
// Downstream services only ever see the resolved user id.
type AuthMiddleware struct {
	tokens *auth.TokenManager
	store  sessions.Store
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *auth.TokenManager, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, store: store}
}

// RequireAuth ensures the caller is authenticated.
// If not authenticated, returns 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, username, ok := m.resolveIdentity(r)
		if !ok {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, UsernameKey, username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveIdentity checks the Authorization header first, then falls back to
// the session cookie.
func (m *AuthMiddleware) resolveIdentity(r *http.Request) (userID, username string, ok bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", "", false
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := m.tokens.Verify(token)
		if err != nil {
			slog.Debug("bearer token rejected",
				"path", r.URL.Path, "remote", r.RemoteAddr, "error", err)
			return "", "", false
		}
		return claims.Subject, claims.Username, true
	}

	// sessions.Store returns a fresh session (with an error) for invalid
	// cookies; IsNew distinguishes that from a real one.
	session, err := m.store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return "", "", false
	}

	userID, _ = session.Values[SessionUserIDKey].(string)
	username, _ = session.Values[SessionUsernameKey].(string)
	if userID == "" {
		return "", "", false
	}

	return userID, username, true
}

// GetUserID extracts the authenticated user's id from the request context.
// Returns empty string if not authenticated.
func GetUserID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
}

// GetUsername extracts the authenticated username from the request context
func GetUsername(r *http.Request) string {
	name, _ := r.Context().Value(UsernameKey).(string)
	return name
}

// SetTestUserID sets the user id in the context for testing purposes.
// This should ONLY be used in tests to mock authenticated callers.
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthenticationRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		slog.Error("failed to write auth error response", "error", err)
	}
}
