package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"quoteboard/internal/api/handlers"
	"quoteboard/internal/core/users"
)

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *users.ValidationError

	switch {
	case errors.Is(err, users.ErrUsernameTaken):
		handlers.WriteError(w, http.StatusConflict, "UserAlreadyExists", "Username is already taken")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid username or password")
	case errors.As(err, &validationErr):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", validationErr.Error())
	default:
		slog.Error("auth handler error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
