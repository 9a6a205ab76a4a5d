package users

import (
	"time"
)

// User is a registered account. PasswordHash is the bcrypt hash of the
// password; the plaintext is never stored and the hash is never serialized
// in API responses.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
}
