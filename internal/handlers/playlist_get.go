package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/models"
	"github.com/mjones-dev/playlist-manager/internal/services"
)

// PlaylistGetter defines the interface that the service must implement.
type PlaylistGetter interface {
	Get(ctx context.Context, playlistID uuid.UUID) (*models.PlaylistDB, error)
}

// NewGetPlaylistHandler returns an HTTP handler reading a single playlist.
// Readable without authentication.
// @Summary Get a playlist
// @Tags playlists
// @Produce json
// @Param playlistID path string true "Playlist identifier"
// @Success 200 {object} models.PlaylistDB "The playlist"
// @Failure 404 {object} handlers.PlaylistErrorResponse "Playlist not found"
// @Router /playlists/{playlistID} [get]
func NewGetPlaylistHandler(svc PlaylistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID, err := uuid.Parse(chi.URLParam(r, "playlistID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PlaylistErrorResponse{
				Error: "Playlist not found",
			})
			return
		}

		playlist, err := svc.Get(r.Context(), playlistID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlaylistNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PlaylistErrorResponse{
					Error: "Playlist not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PlaylistErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(playlist)
	}
}
