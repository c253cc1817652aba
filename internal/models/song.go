package models

import (
	"time"

	"github.com/google/uuid"
)

// SongDB represents a song row in the database.
// AuthorID records who created the entry; authorization for song
// operations is always derived from the owning playlist's owner.
type SongDB struct {
	SongID     uuid.UUID `json:"song_id" db:"song_id"`         // Unique song identifier
	PlaylistID uuid.UUID `json:"playlist_id" db:"playlist_id"` // Identifier of the containing playlist
	Text       string    `json:"text" db:"text"`               // Free-text song body
	Link       string    `json:"link" db:"link"`               // External link (e.g. a YouTube URL)
	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`     // Account that added the song (informational)
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Timestamp when the song was added
}
