package models

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistDB represents a playlist row in the database
type PlaylistDB struct {
	PlaylistID uuid.UUID `json:"playlist_id" db:"playlist_id"` // Unique playlist identifier
	Text       string    `json:"text" db:"text"`               // Free-text playlist body
	OwnerID    uuid.UUID `json:"owner_id" db:"owner_id"`       // Identifier of the owning account
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Timestamp when the playlist was created
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Timestamp of the last edit
}
