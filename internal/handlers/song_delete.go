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

// SongDeleter defines the interface that the service must implement.
type SongDeleter interface {
	Delete(ctx context.Context, songID, actorID uuid.UUID) error
}

// NewDeleteSongHandler returns an HTTP handler deleting a single song.
// The actor must own the song's playlist; the song's author field does
// not grant deletion rights.
// @Summary Delete a song
// @Tags songs
// @Produce json
// @Security BearerAuth
// @Param songID path string true "Song identifier"
// @Success 204 "Song deleted"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.SongErrorResponse "Not the playlist's owner"
// @Failure 404 {object} handlers.SongErrorResponse "Song not found"
// @Router /songs/{songID} [delete]
func NewDeleteSongHandler(svc SongDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		songID, err := uuid.Parse(chi.URLParam(r, "songID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SongErrorResponse{
				Error: "Song not found",
			})
			return
		}

		actorID := middlewares.GetAccountIDFromContext(r.Context())

		if err := svc.Delete(r.Context(), songID, actorID); err != nil {
			switch {
			case errors.Is(err, services.ErrSongNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SongErrorResponse{
					Error: "Song not found",
				})
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(SongErrorResponse{
					Error: "You are not the owner of this playlist",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SongErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
