package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Bootstrap creates the three tables if they do not exist yet.
//
// songs.playlist_id intentionally carries no ON DELETE CASCADE:
// the cascade is performed explicitly by PlaylistWriteRepository.Delete
// inside the request transaction.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	const schema = `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS accounts (
		account_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(250) NOT NULL UNIQUE,
		password_hash VARCHAR(250) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS playlists (
		playlist_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		text VARCHAR(4096) NOT NULL,
		owner_id UUID NOT NULL REFERENCES accounts(account_id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS songs (
		song_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		playlist_id UUID NOT NULL REFERENCES playlists(playlist_id),
		text VARCHAR(4096) NOT NULL,
		link VARCHAR(4096) NOT NULL,
		author_id UUID NOT NULL REFERENCES accounts(account_id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`

	_, err := db.ExecContext(ctx, schema)
	return err
}
