package quote

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quoteboard/internal/api/handlers"
	"quoteboard/internal/core/quotes"
	"quoteboard/internal/core/votes"
)

// Handler serves the quote CRUD endpoints, the list endpoint and the two
// vote endpoints. All routes require an authenticated caller; the vote
// endpoints additionally read the resolved user id from the context.
type Handler struct {
	quotes quotes.Service
	votes  votes.Service
}

// NewHandler creates a new quote handler
func NewHandler(quoteService quotes.Service, voteService votes.Service) *Handler {
	return &Handler{
		quotes: quoteService,
		votes:  voteService,
	}
}

// HandleCreate creates a new quote
// POST /api/quotes
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req quotes.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	quote, err := h.quotes.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, quote)
}

// HandleGet retrieves a single quote
// GET /api/quotes/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quotes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, quote)
}

// HandleUpdate applies partial changes to a quote's text/author
// PATCH /api/quotes/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req quotes.UpdateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	quote, err := h.quotes.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, quote)
}

// HandleDelete removes a quote and its votes
// DELETE /api/quotes/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.quotes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}
