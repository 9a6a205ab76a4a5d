package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"quoteboard/internal/core/quotes"
)

const quoteColumns = "id, text, author, upvotes, downvotes, created_at, updated_at"

type postgresQuoteRepo struct {
	db *sql.DB
}

// NewQuoteRepository creates a new PostgreSQL quote repository
func NewQuoteRepository(db *sql.DB) quotes.Repository {
	return &postgresQuoteRepo{db: db}
}

func scanQuote(row interface{ Scan(...any) error }) (*quotes.Quote, error) {
	var quote quotes.Quote
	err := row.Scan(
		&quote.ID, &quote.Text, &quote.Author,
		&quote.Upvotes, &quote.Downvotes,
		&quote.CreatedAt, &quote.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// Create inserts a new quote with zeroed counters
func (r *postgresQuoteRepo) Create(ctx context.Context, quote *quotes.Quote) (*quotes.Quote, error) {
	query := `
		INSERT INTO quotes (id, text, author)
		VALUES ($1, $2, $3)
		RETURNING ` + quoteColumns

	created, err := scanQuote(r.db.QueryRowContext(ctx, query, quote.ID, quote.Text, quote.Author))
	if err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	return created, nil
}

// GetByID retrieves a quote by id
func (r *postgresQuoteRepo) GetByID(ctx context.Context, id string) (*quotes.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`

	quote, err := scanQuote(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, quotes.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote by id: %w", err)
	}

	return quote, nil
}

// List retrieves a page of quotes plus the total count before pagination.
// The request is already normalized by the service, but the sort column and
// order still go through a whitelist here: they are interpolated into the
// query and must never come from user input directly.
func (r *postgresQuoteRepo) List(ctx context.Context, req quotes.ListQuotesRequest) ([]*quotes.Quote, int, error) {
	whereConditions := []string{}
	args := []interface{}{}
	paramIndex := 1

	// Case-insensitive substring match on quote text.
	if req.Search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("text ILIKE $%d", paramIndex))
		args = append(args, "%"+req.Search+"%")
		paramIndex++
	}

	switch req.Filter {
	case quotes.FilterVoted:
		whereConditions = append(whereConditions, "upvotes > 0")
	case quotes.FilterNotVoted:
		whereConditions = append(whereConditions, "downvotes > 0")
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + strings.Join(whereConditions, " AND ")
	}

	var sortColumn string
	switch req.SortBy {
	case quotes.SortByDownvotes:
		sortColumn = "downvotes"
	case quotes.SortByCreatedAt:
		sortColumn = "created_at"
	default:
		sortColumn = "upvotes"
	}

	sortOrder := "DESC"
	if req.Order == quotes.OrderAsc {
		sortOrder = "ASC"
	}

	// Total count matching search/filter, before pagination.
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM quotes %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	// Secondary sort on id keeps pagination stable when counters tie.
	query := fmt.Sprintf(`
		SELECT %s
		FROM quotes
		%s
		ORDER BY %s %s, id ASC
		LIMIT $%d OFFSET $%d`,
		quoteColumns, whereClause, sortColumn, sortOrder, paramIndex, paramIndex+1)

	offset := (req.Page - 1) * req.Limit
	args = append(args, req.Limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", "error", closeErr)
		}
	}()

	var result []*quotes.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan quote: %w", err)
		}
		result = append(result, quote)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating quotes: %w", err)
	}

	return result, total, nil
}

// Update applies partial changes to a quote's text and author
func (r *postgresQuoteRepo) Update(ctx context.Context, id string, req quotes.UpdateQuoteRequest) (*quotes.Quote, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argNum := 1

	if req.Text != nil {
		setClauses = append(setClauses, fmt.Sprintf("text = $%d", argNum))
		args = append(args, *req.Text)
		argNum++
	}
	if req.Author != nil {
		setClauses = append(setClauses, fmt.Sprintf("author = $%d", argNum))
		args = append(args, *req.Author)
		argNum++
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE quotes
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), argNum, quoteColumns)

	quote, err := scanQuote(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, quotes.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update quote: %w", err)
	}

	return quote, nil
}

// Delete removes a quote and all its votes in one transaction
func (r *postgresQuoteRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "quote_id", id, "error", rollbackErr)
		}
	}()

	// Votes first: they reference the quote.
	if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE quote_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete votes for quote: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return quotes.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
