package quotes

import "context"

// Service defines the business logic interface for quote lifecycle and
// listing. Vote counter mutations are owned by the vote engine, not here.
type Service interface {
	// Create stores a new quote. Whitespace-only text fails with
	// ErrEmptyText; a missing author defaults to DefaultAuthor.
	Create(ctx context.Context, req CreateQuoteRequest) (*Quote, error)

	// Get retrieves a single quote by id.
	Get(ctx context.Context, id string) (*Quote, error)

	// List returns a page of quotes with search, sort and filter applied.
	// Invalid pagination/sort input is coerced to defaults, never an error.
	List(ctx context.Context, req ListQuotesRequest) (*ListQuotesResponse, error)

	// Update applies partial changes to text/author. Text provided but
	// empty fails with ErrEmptyText.
	Update(ctx context.Context, id string, req UpdateQuoteRequest) (*Quote, error)

	// Delete removes a quote and cascades deletion of its votes.
	Delete(ctx context.Context, id string) error
}

// Repository defines the data access interface for quotes.
type Repository interface {
	Create(ctx context.Context, quote *Quote) (*Quote, error)
	GetByID(ctx context.Context, id string) (*Quote, error)

	// List returns the matching page plus the total count before
	// pagination. The request is already normalized by the service.
	List(ctx context.Context, req ListQuotesRequest) ([]*Quote, int, error)

	Update(ctx context.Context, id string, req UpdateQuoteRequest) (*Quote, error)

	// Delete removes the quote and all its votes in one transaction.
	// Returns ErrNotFound if no quote row was deleted.
	Delete(ctx context.Context, id string) error
}
