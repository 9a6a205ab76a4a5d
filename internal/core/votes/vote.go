package votes

import (
	"time"
)

// Vote is a single user's current stance on a quote. There is at most one
// vote per (user, quote) pair; a direction change flips VoteType in place
// rather than appending a new record.
type Vote struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	QuoteID   string    `json:"quoteId" db:"quote_id"`
	VoteType  string    `json:"voteType" db:"vote_type"`
}

// Vote directions as requested by callers.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Stored vote types.
const (
	VoteTypeUpvote   = "upvote"
	VoteTypeDownvote = "downvote"
)

// VoteTypeForDirection maps a request direction to the stored vote type.
// Returns empty string for an unknown direction.
func VoteTypeForDirection(direction string) string {
	switch direction {
	case DirectionUp:
		return VoteTypeUpvote
	case DirectionDown:
		return VoteTypeDownvote
	default:
		return ""
	}
}
