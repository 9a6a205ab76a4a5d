package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	authHandler "quoteboard/internal/api/handlers/auth"
	authcore "quoteboard/internal/auth"
	"quoteboard/internal/core/users"
)

// RegisterAuthRoutes registers the registration/login/logout endpoints.
// These are the only unauthenticated routes besides the health check.
func RegisterAuthRoutes(r chi.Router, userService users.Service, tokens *authcore.TokenManager, store sessions.Store, secureCookies bool) {
	h := authHandler.NewHandler(userService, tokens, store, secureCookies)

	r.Post("/api/auth/register", h.HandleRegister)
	r.Post("/api/auth/login", h.HandleLogin)
	r.Post("/api/auth/logout", h.HandleLogout)
}
