package quote

import (
	"errors"
	"log/slog"
	"net/http"

	"quoteboard/internal/api/handlers"
	"quoteboard/internal/core/quotes"
	"quoteboard/internal/core/votes"
)

// handleServiceError converts quote/vote service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *votes.ValidationError

	switch {
	case errors.Is(err, quotes.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, "QuoteNotFound", "Quote not found")
	case errors.Is(err, quotes.ErrEmptyText):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Quote text is required")
	case errors.Is(err, votes.ErrInvalidDirection):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Vote direction must be 'up' or 'down'")
	case errors.Is(err, votes.ErrDuplicateVote):
		handlers.WriteError(w, http.StatusConflict, "DuplicateVote", "User already voted in this direction")
	case errors.Is(err, votes.ErrVoteNotFound):
		handlers.WriteError(w, http.StatusNotFound, "VoteNotFound", "Vote not found")
	case errors.As(err, &validationErr):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", validationErr.Error())
	default:
		slog.Error("quote handler error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
