package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/models"
)

// SongReader defines read-only operations for songs.
type SongReader interface {
	ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]models.SongDB, error)
	GetByID(ctx context.Context, songID uuid.UUID) (*models.SongDB, error)
}

// SongWriter defines write operations for songs.
type SongWriter interface {
	Save(ctx context.Context, playlistID, authorID uuid.UUID, text, link string) (*models.SongDB, error)
	Delete(ctx context.Context, songID uuid.UUID) error
}

// SongService handles song operations. Ownership is always checked
// against the containing playlist's owner, not the song's author field.
type SongService struct {
	reader    SongReader
	writer    SongWriter
	playlists PlaylistReader
}

// NewSongService creates a new SongService instance.
func NewSongService(reader SongReader, writer SongWriter, playlists PlaylistReader) *SongService {
	return &SongService{reader: reader, writer: writer, playlists: playlists}
}

// Add stores a new song in the given playlist. Only the playlist owner may add.
func (svc *SongService) Add(ctx context.Context, playlistID, actorID uuid.UUID, text, link string) (*models.SongDB, error) {
	playlist, err := svc.playlists.GetByID(ctx, playlistID)
	if err != nil {
		logger.Log.Errorw("failed to get playlist", "err", err)
		return nil, err
	}
	if playlist == nil {
		return nil, ErrPlaylistNotFound
	}
	if playlist.OwnerID != actorID {
		logger.Log.Errorw("add song denied", "playlist_id", playlistID, "actor_id", actorID)
		return nil, ErrNotOwner
	}

	song, err := svc.writer.Save(ctx, playlistID, actorID, text, link)
	if err != nil {
		logger.Log.Errorw("failed to save song", "err", err)
		return nil, err
	}
	return song, nil
}

// ListForPlaylist returns all songs of a playlist, possibly empty.
func (svc *SongService) ListForPlaylist(ctx context.Context, playlistID uuid.UUID) ([]models.SongDB, error) {
	return svc.reader.ListByPlaylist(ctx, playlistID)
}

// Delete removes a song. The actor must own the song's playlist.
func (svc *SongService) Delete(ctx context.Context, songID, actorID uuid.UUID) error {
	song, err := svc.reader.GetByID(ctx, songID)
	if err != nil {
		logger.Log.Errorw("failed to get song", "err", err)
		return err
	}
	if song == nil {
		return ErrSongNotFound
	}

	playlist, err := svc.playlists.GetByID(ctx, song.PlaylistID)
	if err != nil {
		logger.Log.Errorw("failed to get playlist", "err", err)
		return err
	}
	if playlist == nil {
		// Orphaned song: its playlist is gone, treat the song as gone too.
		return ErrSongNotFound
	}
	if playlist.OwnerID != actorID {
		logger.Log.Errorw("delete song denied", "song_id", songID, "actor_id", actorID)
		return ErrNotOwner
	}

	if err := svc.writer.Delete(ctx, songID); err != nil {
		logger.Log.Errorw("failed to delete song", "err", err)
		return err
	}
	return nil
}
