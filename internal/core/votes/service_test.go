package votes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quoteboard/internal/core/quotes"
)

// Mock repositories for testing
type mockVoteRepository struct {
	mock.Mock
}

func (m *mockVoteRepository) GetByUserAndQuote(ctx context.Context, userID, quoteID string) (*Vote, error) {
	args := m.Called(ctx, userID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Vote), args.Error(1)
}

func (m *mockVoteRepository) CreateAndIncrement(ctx context.Context, vote *Vote) (*quotes.Quote, error) {
	args := m.Called(ctx, vote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotes.Quote), args.Error(1)
}

func (m *mockVoteRepository) FlipAndSwapCounts(ctx context.Context, vote *Vote, newVoteType string) (*quotes.Quote, error) {
	args := m.Called(ctx, vote, newVoteType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotes.Quote), args.Error(1)
}

func (m *mockVoteRepository) CountByQuote(ctx context.Context, quoteID string) (int, int, error) {
	args := m.Called(ctx, quoteID)
	return args.Int(0), args.Int(1), args.Error(2)
}

type mockQuoteRepository struct {
	mock.Mock
}

func (m *mockQuoteRepository) Create(ctx context.Context, quote *quotes.Quote) (*quotes.Quote, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotes.Quote), args.Error(1)
}

func (m *mockQuoteRepository) GetByID(ctx context.Context, id string) (*quotes.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotes.Quote), args.Error(1)
}

func (m *mockQuoteRepository) List(ctx context.Context, req quotes.ListQuotesRequest) ([]*quotes.Quote, int, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*quotes.Quote), args.Int(1), args.Error(2)
}

func (m *mockQuoteRepository) Update(ctx context.Context, id string, req quotes.UpdateQuoteRequest) (*quotes.Quote, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotes.Quote), args.Error(1)
}

func (m *mockQuoteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestApplyVote_InvalidDirection(t *testing.T) {
	voteRepo := new(mockVoteRepository)
	quoteRepo := new(mockQuoteRepository)
	service := NewVoteService(voteRepo, quoteRepo, nil)

	_, err := service.ApplyVote(context.Background(), "quote-1", "user-1", "sideways")

	assert.ErrorIs(t, err, ErrInvalidDirection)
	voteRepo.AssertNotCalled(t, "CreateAndIncrement")
	voteRepo.AssertNotCalled(t, "FlipAndSwapCounts")
}

func TestApplyVote_MissingFields(t *testing.T) {
	service := NewVoteService(new(mockVoteRepository), new(mockQuoteRepository), nil)

	var validationErr *ValidationError

	_, err := service.ApplyVote(context.Background(), "", "user-1", DirectionUp)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "quoteId", validationErr.Field)

	_, err = service.ApplyVote(context.Background(), "quote-1", "", DirectionUp)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "userId", validationErr.Field)
}

func TestApplyVote_QuoteNotFound(t *testing.T) {
	voteRepo := new(mockVoteRepository)
	quoteRepo := new(mockQuoteRepository)
	quoteRepo.On("GetByID", mock.Anything, "missing").Return(nil, quotes.ErrNotFound)

	service := NewVoteService(voteRepo, quoteRepo, nil)

	_, err := service.ApplyVote(context.Background(), "missing", "user-1", DirectionUp)

	assert.ErrorIs(t, err, quotes.ErrNotFound)
	voteRepo.AssertNotCalled(t, "GetByUserAndQuote")
}

func TestApplyVote_FirstVoteCreates(t *testing.T) {
	voteRepo := new(mockVoteRepository)
	quoteRepo := new(mockQuoteRepository)

	quoteRepo.On("GetByID", mock.Anything, "quote-1").
		Return(&quotes.Quote{ID: "quote-1", Text: "hello"}, nil)
	voteRepo.On("GetByUserAndQuote", mock.Anything, "user-1", "quote-1").
		Return(nil, ErrVoteNotFound)
	voteRepo.On("CreateAndIncrement", mock.Anything, mock.MatchedBy(func(v *Vote) bool {
		return v.UserID == "user-1" && v.QuoteID == "quote-1" &&
			v.VoteType == VoteTypeUpvote && v.ID != ""
	})).Return(&quotes.Quote{ID: "quote-1", Text: "hello", Upvotes: 1}, nil)

	service := NewVoteService(voteRepo, quoteRepo, nil)

	quote, err := service.ApplyVote(context.Background(), "quote-1", "user-1", DirectionUp)

	require.NoError(t, err)
	assert.Equal(t, 1, quote.Upvotes)
	assert.Equal(t, 0, quote.Downvotes)
	voteRepo.AssertExpectations(t)
}

func TestApplyVote_FirstDownvote(t *testing.T) {
	voteRepo := new(mockVoteRepository)
	quoteRepo := new(mockQuoteRepository)

	quoteRepo.On("GetByID", mock.Anything, "quote-1").
		Return(&quotes.Quote{ID: "quote-1"}, nil)
	voteRepo.On("GetByUserAndQuote", mock.Anything, "user-1", "quote-1").
		Return(nil, ErrVoteNotFound)
	voteRepo.On("CreateAndIncrement", mock.Anything, mock.MatchedBy(func(v *Vote) bool {
		return v.VoteType == VoteTypeDownvote
	})).Return(&quotes.Quote{ID: "quote-1", Downvotes: 1}, nil)

	service := NewVoteService(voteRepo, quoteRepo, nil)

	quote, err := service.ApplyVote(context.Background(), "quote-1", "user-1", DirectionDown)

	require.NoError(t, err)
	assert.Equal(t, 1, quote.Downvotes)
}

func TestApplyVote_DuplicateSameDirection(t *testing.T) {
	voteRepo := new(mockVoteRepository)
	quoteRepo := new(mockQuoteRepository)

	quoteRepo.On("GetByID", mock.Anything, "quote-1").
		Return(&quotes.Quote{ID: "quote-1", Upvotes: 1}, nil)
	voteRepo.On("GetByUserAndQuote", mock.Anything, "user-1", "quote-1").
		Return(&Vote{ID: "vote-1", UserID: "user-1", QuoteID: "quote-1", VoteType: VoteTypeUpvote}, nil)

	service := NewVoteService(voteRepo, quoteRepo, nil)

	_, err := service.ApplyVote(context.Background(), "quote-1", "user-1", DirectionUp)

	assert.ErrorIs(t, err, ErrDuplicateVote)
	// Counters must remain untouched on a duplicate.
	voteRepo.AssertNotCalled(t, "CreateAndIncrement")
	voteRepo.AssertNotCalled(t, "FlipAndSwapCounts")
}

func TestApplyVote_FlipDirection(t *testing.T) {
	voteRepo := new(mockVoteRepository)
	quoteRepo := new(mockQuoteRepository)

	existing := &Vote{ID: "vote-1", UserID: "user-1", QuoteID: "quote-1", VoteType: VoteTypeDownvote}

	quoteRepo.On("GetByID", mock.Anything, "quote-1").
		Return(&quotes.Quote{ID: "quote-1", Downvotes: 1}, nil)
	voteRepo.On("GetByUserAndQuote", mock.Anything, "user-1", "quote-1").
		Return(existing, nil)
	voteRepo.On("FlipAndSwapCounts", mock.Anything, existing, VoteTypeUpvote).
		Return(&quotes.Quote{ID: "quote-1", Upvotes: 1, Downvotes: 0}, nil)

	service := NewVoteService(voteRepo, quoteRepo, nil)

	quote, err := service.ApplyVote(context.Background(), "quote-1", "user-1", DirectionUp)

	require.NoError(t, err)
	assert.Equal(t, 1, quote.Upvotes)
	assert.Equal(t, 0, quote.Downvotes)
	voteRepo.AssertExpectations(t)
}

func TestGetVote(t *testing.T) {
	voteRepo := new(mockVoteRepository)
	quoteRepo := new(mockQuoteRepository)

	want := &Vote{ID: "vote-1", UserID: "user-1", QuoteID: "quote-1", VoteType: VoteTypeUpvote}
	voteRepo.On("GetByUserAndQuote", mock.Anything, "user-1", "quote-1").Return(want, nil)

	service := NewVoteService(voteRepo, quoteRepo, nil)

	got, err := service.GetVote(context.Background(), "user-1", "quote-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVoteTypeForDirection(t *testing.T) {
	assert.Equal(t, VoteTypeUpvote, VoteTypeForDirection(DirectionUp))
	assert.Equal(t, VoteTypeDownvote, VoteTypeForDirection(DirectionDown))
	assert.Equal(t, "", VoteTypeForDirection("left"))
}
