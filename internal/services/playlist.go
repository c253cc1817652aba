package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/models"
)

// PlaylistReader defines read-only operations for playlists.
type PlaylistReader interface {
	List(ctx context.Context) ([]models.PlaylistDB, error)
	GetByID(ctx context.Context, playlistID uuid.UUID) (*models.PlaylistDB, error)
}

// PlaylistWriter defines write operations for playlists.
type PlaylistWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, text string) (*models.PlaylistDB, error)
	UpdateText(ctx context.Context, playlistID uuid.UUID, text string) (*models.PlaylistDB, error)
	Delete(ctx context.Context, playlistID uuid.UUID) error
}

// PlaylistService handles playlist CRUD with ownership enforcement on
// mutations. Reads are open to anonymous callers.
type PlaylistService struct {
	reader PlaylistReader
	writer PlaylistWriter
}

// NewPlaylistService creates a new PlaylistService instance.
func NewPlaylistService(reader PlaylistReader, writer PlaylistWriter) *PlaylistService {
	return &PlaylistService{reader: reader, writer: writer}
}

// Create stores a new playlist owned by the acting account.
func (svc *PlaylistService) Create(ctx context.Context, ownerID uuid.UUID, text string) (*models.PlaylistDB, error) {
	playlist, err := svc.writer.Save(ctx, ownerID, text)
	if err != nil {
		logger.Log.Errorw("failed to save playlist", "err", err)
		return nil, err
	}
	return playlist, nil
}

// List returns all playlists.
func (svc *PlaylistService) List(ctx context.Context) ([]models.PlaylistDB, error) {
	return svc.reader.List(ctx)
}

// Get returns a single playlist or ErrPlaylistNotFound.
func (svc *PlaylistService) Get(ctx context.Context, playlistID uuid.UUID) (*models.PlaylistDB, error) {
	playlist, err := svc.reader.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, ErrPlaylistNotFound
	}
	return playlist, nil
}

// Edit replaces the playlist text. Only the owner may edit.
func (svc *PlaylistService) Edit(ctx context.Context, playlistID, actorID uuid.UUID, text string) (*models.PlaylistDB, error) {
	playlist, err := svc.reader.GetByID(ctx, playlistID)
	if err != nil {
		logger.Log.Errorw("failed to get playlist", "err", err)
		return nil, err
	}
	if playlist == nil {
		return nil, ErrPlaylistNotFound
	}
	if playlist.OwnerID != actorID {
		logger.Log.Errorw("edit denied", "playlist_id", playlistID, "actor_id", actorID)
		return nil, ErrNotOwner
	}

	updated, err := svc.writer.UpdateText(ctx, playlistID, text)
	if err != nil {
		logger.Log.Errorw("failed to update playlist", "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrPlaylistNotFound
	}
	return updated, nil
}

// Delete removes the playlist and all of its songs. Only the owner may delete.
func (svc *PlaylistService) Delete(ctx context.Context, playlistID, actorID uuid.UUID) error {
	playlist, err := svc.reader.GetByID(ctx, playlistID)
	if err != nil {
		logger.Log.Errorw("failed to get playlist", "err", err)
		return err
	}
	if playlist == nil {
		return ErrPlaylistNotFound
	}
	if playlist.OwnerID != actorID {
		logger.Log.Errorw("delete denied", "playlist_id", playlistID, "actor_id", actorID)
		return ErrNotOwner
	}

	if err := svc.writer.Delete(ctx, playlistID); err != nil {
		logger.Log.Errorw("failed to delete playlist", "err", err)
		return err
	}
	return nil
}
