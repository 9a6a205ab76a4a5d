package quotes

import (
	"time"
)

// Quote is the primary content entity. The upvote/downvote counters are a
// cached projection of the vote records; they are only mutated inside the
// vote engine's transactions and must never drift from the votes table.
type Quote struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	Author    string    `json:"author" db:"author"`
	Upvotes   int       `json:"upvotes" db:"upvotes"`
	Downvotes int       `json:"downvotes" db:"downvotes"`
}

// DefaultAuthor is used when a quote is created without an author.
const DefaultAuthor = "Unknown"

// CreateQuoteRequest is the input for creating a new quote.
type CreateQuoteRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// UpdateQuoteRequest carries partial updates to a quote.
// Nil fields mean "leave unchanged".
type UpdateQuoteRequest struct {
	Text   *string `json:"text"`
	Author *string `json:"author"`
}

// Sort fields accepted by the list endpoint. Anything else falls back to
// SortByUpvotes rather than erroring.
const (
	SortByUpvotes   = "upvotes"
	SortByDownvotes = "downvotes"
	SortByCreatedAt = "createdAt"
)

// Sort orders. Default is descending.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// List filters. "voted" keeps quotes with at least one upvote, "not_voted"
// keeps quotes with at least one downvote. The naming is historical: it
// matches the behavior clients already depend on, not what the words
// suggest. Do not "fix" without a coordinated API change.
const (
	FilterVoted    = "voted"
	FilterNotVoted = "not_voted"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListQuotesRequest carries the query parameters for listing quotes.
// Values are normalized by the service before hitting the repository:
// invalid input falls back to defaults instead of erroring.
type ListQuotesRequest struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Order  string
	Filter string
}

// ListQuotesResponse is a single page of quotes plus pagination metadata.
// Total counts all quotes matching the search/filter, before pagination.
type ListQuotesResponse struct {
	Data       []*Quote `json:"data"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	Total      int      `json:"total"`
	TotalPages int      `json:"totalPages"`
}
