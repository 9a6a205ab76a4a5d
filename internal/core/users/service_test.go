package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, ErrUserNotFound)

	var createdUser *User
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		createdUser = u
		return u.Username == "alice" && u.ID != "" && u.PasswordHash != "s3cret"
	})).Return(&User{ID: "user-1", Username: "alice"}, nil)

	service := NewUserService(repo, nil)

	user, err := service.Register(context.Background(), "alice", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	require.NotNil(t, createdUser)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.PasswordHash), []byte("s3cret")))
}

func TestRegister_TrimsUsername(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, ErrUserNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Username == "alice"
	})).Return(&User{ID: "user-1", Username: "alice"}, nil)

	service := NewUserService(repo, nil)

	_, err := service.Register(context.Background(), "  alice  ", "s3cret")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	service := NewUserService(new(mockRepository), nil)

	var validationErr *ValidationError

	_, err := service.Register(context.Background(), "   ", "s3cret")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username", validationErr.Field)

	_, err = service.Register(context.Background(), "alice", "")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password", validationErr.Field)
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&User{ID: "user-1", Username: "alice"}, nil)

	service := NewUserService(repo, nil)

	_, err := service.Register(context.Background(), "alice", "s3cret")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestRegister_RaceLosesToConstraint(t *testing.T) {
	// The early check passes but the insert hits the unique constraint.
	repo := new(mockRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, ErrUserNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrUsernameTaken)

	service := NewUserService(repo, nil)

	_, err := service.Register(context.Background(), "alice", "s3cret")

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&User{ID: "user-1", Username: "alice", PasswordHash: hashPassword(t, "s3cret")}, nil)

	service := NewUserService(repo, nil)

	user, err := service.Authenticate(context.Background(), "alice", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&User{ID: "user-1", Username: "alice", PasswordHash: hashPassword(t, "s3cret")}, nil)

	service := NewUserService(repo, nil)

	_, err := service.Authenticate(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetByUsername", mock.Anything, "nobody").Return(nil, ErrUserNotFound)

	service := NewUserService(repo, nil)

	_, err := service.Authenticate(context.Background(), "nobody", "s3cret")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByID(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, "user-1").
		Return(&User{ID: "user-1", Username: "alice"}, nil)

	service := NewUserService(repo, nil)

	user, err := service.GetByID(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
