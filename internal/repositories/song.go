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

// SongReadRepository handles song read operations
type SongReadRepository struct {
	db *sqlx.DB
}

func NewSongReadRepository(db *sqlx.DB) *SongReadRepository {
	return &SongReadRepository{db: db}
}

// ListByPlaylist returns all songs belonging to the given playlist, possibly empty.
func (r *SongReadRepository) ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]models.SongDB, error) {
	const query = `
		SELECT song_id, playlist_id, text, link, author_id, created_at
		FROM songs
		WHERE playlist_id = $1
		ORDER BY created_at
	`

	var songs []models.SongDB
	err := r.db.SelectContext(ctx, &songs, query, playlistID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playlistID},
		"result", len(songs),
		"error", err,
	)

	return songs, err
}

// GetByID returns the song with the given identifier, or nil if absent.
func (r *SongReadRepository) GetByID(ctx context.Context, songID uuid.UUID) (*models.SongDB, error) {
	const query = `
		SELECT song_id, playlist_id, text, link, author_id, created_at
		FROM songs
		WHERE song_id = $1
		LIMIT 1
	`

	var song models.SongDB
	err := r.db.GetContext(ctx, &song, query, songID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{songID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &song, nil
}

// SongWriteRepository handles song write operations
type SongWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSongWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SongWriteRepository {
	return &SongWriteRepository{db: db, txGetter: txGetter}
}

func (r *SongWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new song into the given playlist and returns the stored record.
func (r *SongWriteRepository) Save(ctx context.Context, playlistID, authorID uuid.UUID, text, link string) (*models.SongDB, error) {
	const query = `
		INSERT INTO songs (song_id, playlist_id, text, link, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING song_id, playlist_id, text, link, author_id, created_at
	`
	args := []any{uuid.New(), playlistID, text, link, authorID}

	var song models.SongDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &song, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &song, nil
}

// Delete removes a single song. Returns sql.ErrNoRows if the song is absent.
func (r *SongWriteRepository) Delete(ctx context.Context, songID uuid.UUID) error {
	const query = `DELETE FROM songs WHERE song_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, songID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{songID},
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
