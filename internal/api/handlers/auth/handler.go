package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"quoteboard/internal/api/handlers"
	"quoteboard/internal/api/middleware"
	authcore "quoteboard/internal/auth"
	"quoteboard/internal/core/users"
)

// Handler serves registration, login and logout. On success it both sets
// the signed session cookie and returns the bearer token in the body, so
// browser and API clients share the same endpoints.
type Handler struct {
	users         users.Service
	tokens        *authcore.TokenManager
	store         sessions.Store
	secureCookies bool
}

// NewHandler creates a new auth handler
func NewHandler(userService users.Service, tokens *authcore.TokenManager, store sessions.Store, secureCookies bool) *Handler {
	return &Handler{
		users:         userService,
		tokens:        tokens,
		store:         store,
		secureCookies: secureCookies,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister creates an account and issues a session token
// POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		slog.Error("failed to issue token", "user_id", user.ID, "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to issue token")
		return
	}

	if err := h.saveSession(w, r, user); err != nil {
		slog.Error("failed to save session", "user_id", user.ID, "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to create session")
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"access_token": token,
	})
}

// HandleLogin verifies credentials and issues a session token
// POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		slog.Error("failed to issue token", "user_id", user.ID, "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to issue token")
		return
	}

	if err := h.saveSession(w, r, user); err != nil {
		slog.Error("failed to save session", "user_id", user.ID, "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to create session")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Login successful",
		"access_token": token,
	})
}

// HandleLogout clears the session cookie
// POST /api/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		// A corrupt cookie still gets cleared below.
		slog.Debug("failed to decode session on logout", "error", err)
	}

	session.Options = h.sessionOptions()
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		slog.Error("failed to clear session", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to clear session")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logout successful",
	})
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, user *users.User) error {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		// Stale or tampered cookie: start a fresh session over it.
		slog.Debug("failed to decode existing session", "error", err)
	}

	session.Options = h.sessionOptions()
	session.Values[middleware.SessionUserIDKey] = user.ID
	session.Values[middleware.SessionUsernameKey] = user.Username

	return session.Save(r, w)
}

func (h *Handler) sessionOptions() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
