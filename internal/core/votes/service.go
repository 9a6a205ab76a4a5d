package votes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"quoteboard/internal/core/quotes"
)

type voteService struct {
	repo      Repository
	quoteRepo quotes.Repository
	locks     *keyedMutex
	logger    *slog.Logger
}

// NewVoteService creates a new vote engine service
func NewVoteService(repo Repository, quoteRepo quotes.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &voteService{
		repo:      repo,
		quoteRepo: quoteRepo,
		locks:     newKeyedMutex(),
		logger:    logger,
	}
}

// ApplyVote resolves the user's prior vote against the requested direction
// and updates vote record and quote counters.
//
// Concurrency: the per-quote lock serializes in-process voters on the same
// quote, and each repository mutation runs as one transaction that locks
// the quote row. Cross-process duplicate creation is additionally caught by
// the unique (user_id, quote_id) index, which surfaces as ErrDuplicateVote.
func (s *voteService) ApplyVote(ctx context.Context, quoteID, userID, direction string) (*quotes.Quote, error) {
	if quoteID == "" {
		return nil, NewValidationError("quoteId", "required")
	}
	if userID == "" {
		return nil, NewValidationError("userId", "required")
	}

	voteType := VoteTypeForDirection(direction)
	if voteType == "" {
		return nil, ErrInvalidDirection
	}

	unlock := s.locks.Lock(quoteID)
	defer unlock()

	// Verify the quote exists before touching vote state so a vote on a
	// deleted quote fails with NotFound rather than a dangling insert.
	if _, err := s.quoteRepo.GetByID(ctx, quoteID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUserAndQuote(ctx, userID, quoteID)
	if err != nil && !errors.Is(err, ErrVoteNotFound) {
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}

	if existing == nil {
		// First vote by this user on this quote.
		vote := &Vote{
			ID:       uuid.NewString(),
			UserID:   userID,
			QuoteID:  quoteID,
			VoteType: voteType,
		}

		quote, err := s.repo.CreateAndIncrement(ctx, vote)
		if err != nil {
			return nil, err
		}

		s.logger.Info("vote created",
			"quote_id", quoteID, "user_id", userID, "direction", direction)

		return quote, nil
	}

	if existing.VoteType == voteType {
		// Repeat same-direction vote: reject, counters untouched.
		return nil, ErrDuplicateVote
	}

	// Direction change: flip the vote and move one count across.
	previousType := existing.VoteType
	quote, err := s.repo.FlipAndSwapCounts(ctx, existing, voteType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("vote flipped",
		"quote_id", quoteID, "user_id", userID,
		"from", previousType, "to", voteType)

	return quote, nil
}

// GetVote retrieves a user's current vote on a quote
func (s *voteService) GetVote(ctx context.Context, userID, quoteID string) (*Vote, error) {
	return s.repo.GetByUserAndQuote(ctx, userID, quoteID)
}
