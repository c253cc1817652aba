package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/models"
)

// SongLister defines the interface that the service must implement.
type SongLister interface {
	ListForPlaylist(ctx context.Context, playlistID uuid.UUID) ([]models.SongDB, error)
}

// NewListSongsHandler returns an HTTP handler listing a playlist's songs.
// Readable without authentication; an unknown playlist id yields an
// empty list, matching the open-playlist view of the original system.
// @Summary List songs in a playlist
// @Tags songs
// @Produce json
// @Param playlistID path string true "Playlist identifier"
// @Success 200 {array} models.SongDB "Songs in the playlist, possibly empty"
// @Router /playlists/{playlistID}/songs [get]
func NewListSongsHandler(svc SongLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID, err := uuid.Parse(chi.URLParam(r, "playlistID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SongErrorResponse{
				Error: "Playlist not found",
			})
			return
		}

		songs, err := svc.ListForPlaylist(r.Context(), playlistID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SongErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if songs == nil {
			songs = []models.SongDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(songs)
	}
}
