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
	"github.com/mjones-dev/playlist-manager/internal/models"
	"github.com/mjones-dev/playlist-manager/internal/services"
)

// PlaylistEditor defines the interface that the service must implement.
type PlaylistEditor interface {
	Edit(ctx context.Context, playlistID, actorID uuid.UUID, text string) (*models.PlaylistDB, error)
}

// EditPlaylistRequest represents the JSON body for a playlist edit
// swagger:model EditPlaylistRequest
type EditPlaylistRequest struct {
	// New playlist body
	// required: true
	// default: road trip (updated)
	Text string `json:"text"`
}

// NewEditPlaylistHandler returns an HTTP handler replacing a playlist's text.
// Only the playlist's owner may edit it.
// @Summary Edit a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistID path string true "Playlist identifier"
// @Param editPlaylistRequest body handlers.EditPlaylistRequest true "Playlist edit request"
// @Success 200 {object} models.PlaylistDB "Updated playlist"
// @Failure 400 {object} handlers.PlaylistErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.PlaylistErrorResponse "Not the playlist's owner"
// @Failure 404 {object} handlers.PlaylistErrorResponse "Playlist not found"
// @Router /playlists/{playlistID} [put]
func NewEditPlaylistHandler(svc PlaylistEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID, err := uuid.Parse(chi.URLParam(r, "playlistID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PlaylistErrorResponse{
				Error: "Playlist not found",
			})
			return
		}

		var req EditPlaylistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PlaylistErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		actorID := middlewares.GetAccountIDFromContext(r.Context())

		playlist, err := svc.Edit(r.Context(), playlistID, actorID, req.Text)
		if err != nil {
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(playlist)
	}
}
