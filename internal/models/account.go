package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountDB represents an account record in the database.
// The password hash is never exposed through the API.
type AccountDB struct {
	AccountID    uuid.UUID `json:"account_id" db:"account_id"`   // Primary key
	Username     string    `json:"username" db:"username"`       // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`         // Bcrypt hash, never plaintext
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}
