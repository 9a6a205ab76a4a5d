package users

import "context"

// Service defines the business logic interface for accounts. Token issuance
// lives in the auth layer; the core only deals in users and credentials.
type Service interface {
	// Register creates a new account with a bcrypt-hashed password.
	// Fails with ErrUsernameTaken if the username exists.
	Register(ctx context.Context, username, password string) (*User, error)

	// Authenticate verifies a credential pair. Fails with ErrUserNotFound
	// for an unknown username and ErrInvalidCredentials on hash mismatch.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id string) (*User, error)
}

// Repository defines the data access interface for users.
type Repository interface {
	// Create inserts a new user. Returns ErrUsernameTaken on a username
	// unique-constraint violation.
	Create(ctx context.Context, user *User) (*User, error)

	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
