package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/models"
)

// PlaylistReadRepository handles playlist read operations
type PlaylistReadRepository struct {
	db *sqlx.DB
}

func NewPlaylistReadRepository(db *sqlx.DB) *PlaylistReadRepository {
	return &PlaylistReadRepository{db: db}
}

// List returns all playlists.
func (r *PlaylistReadRepository) List(ctx context.Context) ([]models.PlaylistDB, error) {
	const query = `
		SELECT playlist_id, text, owner_id, created_at, updated_at
		FROM playlists
		ORDER BY created_at
	`

	var playlists []models.PlaylistDB
	err := r.db.SelectContext(ctx, &playlists, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(playlists),
		"error", err,
	)

	return playlists, err
}

// GetByID returns the playlist with the given identifier, or nil if absent.
func (r *PlaylistReadRepository) GetByID(ctx context.Context, playlistID uuid.UUID) (*models.PlaylistDB, error) {
	const query = `
		SELECT playlist_id, text, owner_id, created_at, updated_at
		FROM playlists
		WHERE playlist_id = $1
		LIMIT 1
	`

	var playlist models.PlaylistDB
	err := r.db.GetContext(ctx, &playlist, query, playlistID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playlistID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &playlist, nil
}

// PlaylistWriteRepository handles playlist write operations
type PlaylistWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlaylistWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlaylistWriteRepository {
	return &PlaylistWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlaylistWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new playlist owned by the given account and returns the stored record.
func (r *PlaylistWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, text string) (*models.PlaylistDB, error) {
	const query = `
		INSERT INTO playlists (playlist_id, text, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING playlist_id, text, owner_id, created_at, updated_at
	`
	args := []any{uuid.New(), text, ownerID}

	var playlist models.PlaylistDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &playlist, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &playlist, nil
}

// UpdateText replaces the playlist body and returns the updated record,
// or nil if the playlist does not exist.
func (r *PlaylistWriteRepository) UpdateText(ctx context.Context, playlistID uuid.UUID, text string) (*models.PlaylistDB, error) {
	const query = `
		UPDATE playlists
		SET text = $2, updated_at = NOW()
		WHERE playlist_id = $1
		RETURNING playlist_id, text, owner_id, created_at, updated_at
	`

	var playlist models.PlaylistDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &playlist, query, playlistID, text)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playlistID, text},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &playlist, nil
}

// Delete removes the playlist together with all of its songs.
// Both statements run on the same executor, so under the request
// transaction the cascade is atomic: either the playlist and its songs
// are all gone, or none of them are.
func (r *PlaylistWriteRepository) Delete(ctx context.Context, playlistID uuid.UUID) error {
	const deleteSongs = `DELETE FROM songs WHERE playlist_id = $1`
	const deletePlaylist = `DELETE FROM playlists WHERE playlist_id = $1`

	executor := r.executor(ctx)

	if _, err := executor.ExecContext(ctx, deleteSongs, playlistID); err != nil {
		logger.Log.Infow(
			"query", deleteSongs,
			"args", []any{playlistID},
			"error", err,
		)
		return err
	}

	res, err := executor.ExecContext(ctx, deletePlaylist, playlistID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", deletePlaylist,
		"args", []any{playlistID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
