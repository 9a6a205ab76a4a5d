package routes

import (
	"github.com/go-chi/chi/v5"

	quoteHandler "quoteboard/internal/api/handlers/quote"
	"quoteboard/internal/api/middleware"
	"quoteboard/internal/core/quotes"
	"quoteboard/internal/core/votes"
)

// RegisterQuoteRoutes registers the quote CRUD, listing and vote endpoints.
// Every route requires authentication.
func RegisterQuoteRoutes(r chi.Router, quoteService quotes.Service, voteService votes.Service, authMiddleware *middleware.AuthMiddleware) {
	h := quoteHandler.NewHandler(quoteService, voteService)

	r.Route("/api/quotes", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)

		r.Get("/{id}", h.HandleGet)
		r.Patch("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)

		r.Patch("/{id}/upvote", h.HandleUpvote)
		r.Patch("/{id}/downvote", h.HandleDownvote)
	})
}
