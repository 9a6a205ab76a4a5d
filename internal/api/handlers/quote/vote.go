package quote

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quoteboard/internal/api/handlers"
	"quoteboard/internal/api/middleware"
	"quoteboard/internal/core/votes"
)

// HandleUpvote applies an upvote by the authenticated user
// PATCH /api/quotes/{id}/upvote
func (h *Handler) HandleUpvote(w http.ResponseWriter, r *http.Request) {
	h.applyVote(w, r, votes.DirectionUp)
}

// HandleDownvote applies a downvote by the authenticated user
// PATCH /api/quotes/{id}/downvote
func (h *Handler) HandleDownvote(w http.ResponseWriter, r *http.Request) {
	h.applyVote(w, r, votes.DirectionDown)
}

func (h *Handler) applyVote(w http.ResponseWriter, r *http.Request, direction string) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	quote, err := h.votes.ApplyVote(r.Context(), chi.URLParam(r, "id"), userID, direction)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, quote)
}
