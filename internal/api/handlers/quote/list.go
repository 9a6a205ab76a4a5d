package quote

import (
	"net/http"
	"strconv"

	"quoteboard/internal/api/handlers"
	"quoteboard/internal/core/quotes"
)

// HandleList returns a page of quotes
// GET /api/quotes?page&limit&search&sortBy&order&filter
//
// Bad pagination/sort values fall back to defaults rather than erroring;
// the service normalizes everything before it reaches the repository.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := quotes.ListQuotesRequest{
		Page:   atoiOrZero(q.Get("page")),
		Limit:  atoiOrZero(q.Get("limit")),
		Search: q.Get("search"),
		SortBy: q.Get("sortBy"),
		Order:  q.Get("order"),
		Filter: q.Get("filter"),
	}

	resp, err := h.quotes.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// atoiOrZero parses an integer query value, returning 0 (meaning "use the
// default") for anything non-numeric.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
