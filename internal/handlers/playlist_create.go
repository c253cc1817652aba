package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/middlewares"
	"github.com/mjones-dev/playlist-manager/internal/models"
)

// PlaylistCreator defines the interface that the service must implement.
type PlaylistCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, text string) (*models.PlaylistDB, error)
}

// CreatePlaylistRequest represents the JSON body for playlist creation
// swagger:model CreatePlaylistRequest
type CreatePlaylistRequest struct {
	// Playlist body
	// required: true
	// default: road trip
	Text string `json:"text"`
}

// PlaylistErrorResponse represents an error response for playlist operations
// swagger:model PlaylistErrorResponse
type PlaylistErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreatePlaylistHandler returns an HTTP handler for playlist creation.
// The authenticated caller becomes the playlist's owner.
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createPlaylistRequest body handlers.CreatePlaylistRequest true "Playlist creation request"
// @Success 201 {object} models.PlaylistDB "Created playlist"
// @Failure 400 {object} handlers.PlaylistErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Router /playlists [post]
func NewCreatePlaylistHandler(svc PlaylistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePlaylistRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PlaylistErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		ownerID := middlewares.GetAccountIDFromContext(r.Context())

		playlist, err := svc.Create(r.Context(), ownerID, req.Text)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PlaylistErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(playlist)
	}
}
