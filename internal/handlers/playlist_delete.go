package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/middlewares"
	"github.com/mjones-dev/playlist-manager/internal/services"
)

// PlaylistDeleter defines the interface that the service must implement.
type PlaylistDeleter interface {
	Delete(ctx context.Context, playlistID, actorID uuid.UUID) error
}

// NewDeletePlaylistHandler returns an HTTP handler deleting a playlist
// together with all of its songs. Only the playlist's owner may delete it.
// @Summary Delete a playlist
// @Description Removes the playlist and every song it contains, atomically.
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param playlistID path string true "Playlist identifier"
// @Success 204 "Playlist and songs deleted"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.PlaylistErrorResponse "Not the playlist's owner"
// @Failure 404 {object} handlers.PlaylistErrorResponse "Playlist not found"
// @Router /playlists/{playlistID} [delete]
func NewDeletePlaylistHandler(svc PlaylistDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID, err := uuid.Parse(chi.URLParam(r, "playlistID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PlaylistErrorResponse{
				Error: "Playlist not found",
			})
			return
		}

		actorID := middlewares.GetAccountIDFromContext(r.Context())

		if err := svc.Delete(r.Context(), playlistID, actorID); err != nil {
			switch {
			case errors.Is(err, services.ErrPlaylistNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PlaylistErrorResponse{
					Error: "Playlist not found",
				})
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(PlaylistErrorResponse{
					Error: "You are not the owner of this playlist",
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

		w.WriteHeader(http.StatusNoContent)
	}
}
