package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"quoteboard/internal/core/quotes"
	"quoteboard/internal/core/votes"
)

type postgresVoteRepo struct {
	db *sql.DB
}

// NewVoteRepository creates a new PostgreSQL vote repository
func NewVoteRepository(db *sql.DB) votes.Repository {
	return &postgresVoteRepo{db: db}
}

// GetByUserAndQuote retrieves a user's vote on a quote
func (r *postgresVoteRepo) GetByUserAndQuote(ctx context.Context, userID, quoteID string) (*votes.Vote, error) {
	query := `
		SELECT id, user_id, quote_id, vote_type, created_at, updated_at
		FROM votes
		WHERE user_id = $1 AND quote_id = $2
	`

	var vote votes.Vote
	err := r.db.QueryRowContext(ctx, query, userID, quoteID).Scan(
		&vote.ID, &vote.UserID, &vote.QuoteID, &vote.VoteType,
		&vote.CreatedAt, &vote.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote by user and quote: %w", err)
	}

	return &vote, nil
}

// CreateAndIncrement inserts a vote and increments the matching quote
// counter in one transaction. The quote row is locked first so concurrent
// votes on the same quote serialize at the database and counter updates
// are never lost.
func (r *postgresVoteRepo) CreateAndIncrement(ctx context.Context, vote *votes.Vote) (*quotes.Quote, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer rollback(tx, vote.QuoteID)

	if err := lockQuote(ctx, tx, vote.QuoteID); err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO votes (id, user_id, quote_id, vote_type)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, insertQuery, vote.ID, vote.UserID, vote.QuoteID, vote.VoteType).
		Scan(&vote.CreatedAt, &vote.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "unique_user_quote") {
			return nil, votes.ErrDuplicateVote
		}
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	var counter string
	if vote.VoteType == votes.VoteTypeUpvote {
		counter = "upvotes"
	} else {
		counter = "downvotes"
	}

	updateQuery := fmt.Sprintf(`
		UPDATE quotes
		SET %s = %s + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, counter, counter, quoteColumns)

	quote, err := scanQuote(tx.QueryRowContext(ctx, updateQuery, vote.QuoteID))
	if err != nil {
		return nil, fmt.Errorf("failed to increment quote counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return quote, nil
}

// FlipAndSwapCounts changes a vote's type and moves one count from the old
// direction to the new one, all in one transaction behind the quote row
// lock. The decrement is floored at zero (GREATEST) so a pre-existing
// counter drift can never push a counter negative.
func (r *postgresVoteRepo) FlipAndSwapCounts(ctx context.Context, vote *votes.Vote, newVoteType string) (*quotes.Quote, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer rollback(tx, vote.QuoteID)

	if err := lockQuote(ctx, tx, vote.QuoteID); err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE votes SET vote_type = $2, updated_at = NOW() WHERE id = $1`,
		vote.ID, newVoteType)
	if err != nil {
		return nil, fmt.Errorf("failed to flip vote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check flip result: %w", err)
	}
	if rowsAffected == 0 {
		return nil, votes.ErrVoteNotFound
	}

	var updateQuery string
	if newVoteType == votes.VoteTypeUpvote {
		updateQuery = `
			UPDATE quotes
			SET upvotes = upvotes + 1,
			    downvotes = GREATEST(0, downvotes - 1),
			    updated_at = NOW()
			WHERE id = $1
			RETURNING ` + quoteColumns
	} else {
		updateQuery = `
			UPDATE quotes
			SET downvotes = downvotes + 1,
			    upvotes = GREATEST(0, upvotes - 1),
			    updated_at = NOW()
			WHERE id = $1
			RETURNING ` + quoteColumns
	}

	quote, err := scanQuote(tx.QueryRowContext(ctx, updateQuery, vote.QuoteID))
	if err != nil {
		return nil, fmt.Errorf("failed to swap quote counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	vote.VoteType = newVoteType

	return quote, nil
}

// CountByQuote recomputes the counters from the vote records
func (r *postgresVoteRepo) CountByQuote(ctx context.Context, quoteID string) (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE vote_type = 'upvote'),
			COUNT(*) FILTER (WHERE vote_type = 'downvote')
		FROM votes
		WHERE quote_id = $1
	`

	var upvotes, downvotes int
	if err := r.db.QueryRowContext(ctx, query, quoteID).Scan(&upvotes, &downvotes); err != nil {
		return 0, 0, fmt.Errorf("failed to count votes for quote: %w", err)
	}

	return upvotes, downvotes, nil
}

// lockQuote takes the row lock on a quote inside a transaction.
// Returns quotes.ErrNotFound if the quote doesn't exist.
func lockQuote(ctx context.Context, tx *sql.Tx, quoteID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM quotes WHERE id = $1 FOR UPDATE`, quoteID).Scan(&id)
	if err == sql.ErrNoRows {
		return quotes.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock quote: %w", err)
	}
	return nil
}

func rollback(tx *sql.Tx, quoteID string) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		slog.Error("failed to rollback transaction", "quote_id", quoteID, "error", err)
	}
}
