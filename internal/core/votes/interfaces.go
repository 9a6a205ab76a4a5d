package votes

import (
	"context"

	"quoteboard/internal/core/quotes"
)

// Service defines the vote engine interface.
type Service interface {
	// ApplyVote resolves the user's prior vote state against the requested
	// direction and atomically updates both the vote record and the quote's
	// counters:
	//   - No vote        -> create vote, increment the matching counter
	//   - Same direction -> ErrDuplicateVote, nothing changes
	//   - Other direction -> flip the vote, move one count across
	// Fails with quotes.ErrNotFound if the quote doesn't exist.
	ApplyVote(ctx context.Context, quoteID, userID, direction string) (*quotes.Quote, error)

	// GetVote retrieves the user's current vote on a quote, or
	// ErrVoteNotFound.
	GetVote(ctx context.Context, userID, quoteID string) (*Vote, error)
}

// Repository defines the data access interface for votes. The two mutating
// primitives each run as a single transaction that locks the quote row,
// so counters and vote records can never diverge mid-operation.
type Repository interface {
	// GetByUserAndQuote retrieves a user's vote on a quote.
	// Returns ErrVoteNotFound if the user hasn't voted on it.
	GetByUserAndQuote(ctx context.Context, userID, quoteID string) (*Vote, error)

	// CreateAndIncrement inserts the vote and increments the matching
	// quote counter in one transaction, returning the updated quote.
	// Returns quotes.ErrNotFound if the quote row is missing and
	// ErrDuplicateVote if a vote for the pair already exists (unique
	// index backstop for cross-process races).
	CreateAndIncrement(ctx context.Context, vote *Vote) (*quotes.Quote, error)

	// FlipAndSwapCounts changes the vote's type and moves one count from
	// the old direction's counter to the new one in one transaction,
	// returning the updated quote. The decrement is floored at zero so
	// counters never go negative even under pre-existing drift.
	FlipAndSwapCounts(ctx context.Context, vote *Vote, newVoteType string) (*quotes.Quote, error)

	// CountByQuote recomputes the counters from vote records. Used by the
	// reconcile tool and tests to verify the counters haven't drifted.
	CountByQuote(ctx context.Context, quoteID string) (upvotes, downvotes int, err error)
}
