package quotes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type quoteService struct {
	repo   Repository
	logger *slog.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &quoteService{repo: repo, logger: logger}
}

// Create stores a new quote with zeroed vote counters
func (s *quoteService) Create(ctx context.Context, req CreateQuoteRequest) (*Quote, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	author := req.Author
	if author == "" {
		author = DefaultAuthor
	}

	quote := &Quote{
		ID:     uuid.NewString(),
		Text:   req.Text,
		Author: author,
	}

	created, err := s.repo.Create(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	s.logger.Info("quote created", "quote_id", created.ID, "author", created.Author)

	return created, nil
}

func (s *quoteService) Get(ctx context.Context, id string) (*Quote, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of quotes. Pagination, sort and filter input is
// coerced to defaults first so bad query strings never fail the request.
func (s *quoteService) List(ctx context.Context, req ListQuotesRequest) (*ListQuotesResponse, error) {
	req = normalizeListRequest(req)

	data, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	if data == nil {
		data = []*Quote{}
	}

	totalPages := (total + req.Limit - 1) / req.Limit

	return &ListQuotesResponse{
		Data:       data,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Update applies partial changes to a quote's text and author
func (s *quoteService) Update(ctx context.Context, id string, req UpdateQuoteRequest) (*Quote, error) {
	if req.Text != nil && strings.TrimSpace(*req.Text) == "" {
		return nil, ErrEmptyText
	}

	if req.Text == nil && req.Author == nil {
		// Nothing to change; return the current state.
		return s.repo.GetByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("quote updated", "quote_id", id)

	return updated, nil
}

// Delete removes a quote. The repository cascades deletion of its votes
// inside the same transaction.
func (s *quoteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("quote deleted", "quote_id", id)

	return nil
}

// normalizeListRequest coerces pagination, sort and filter values to their
// defaults. Invalid values never error: the contract is "default, don't
// reject" for the list endpoint.
func normalizeListRequest(req ListQuotesRequest) ListQuotesRequest {
	if req.Page < 1 {
		req.Page = DefaultPage
	}
	if req.Limit < 1 {
		req.Limit = DefaultLimit
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}

	switch req.SortBy {
	case SortByUpvotes, SortByDownvotes, SortByCreatedAt:
	default:
		req.SortBy = SortByUpvotes
	}

	if req.Order != OrderAsc {
		req.Order = OrderDesc
	}

	switch req.Filter {
	case FilterVoted, FilterNotVoted:
	default:
		req.Filter = ""
	}

	return req
}
