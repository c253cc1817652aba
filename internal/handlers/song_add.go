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

// SongAdder defines the interface that the service must implement.
type SongAdder interface {
	Add(ctx context.Context, playlistID, actorID uuid.UUID, text, link string) (*models.SongDB, error)
}

// AddSongRequest represents the JSON body for adding a song
// swagger:model AddSongRequest
type AddSongRequest struct {
	// Song body
	// required: true
	// default: Song A
	Text string `json:"text"`

	// External link
	// required: true
	// default: http://example.com/a
	Link string `json:"link"`
}

// SongErrorResponse represents an error response for song operations
// swagger:model SongErrorResponse
type SongErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewAddSongHandler returns an HTTP handler adding a song to a playlist.
// Only the playlist's owner may add songs to it.
// @Summary Add a song to a playlist
// @Tags songs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistID path string true "Playlist identifier"
// @Param addSongRequest body handlers.AddSongRequest true "Song to add"
// @Success 201 {object} models.SongDB "Created song"
// @Failure 400 {object} handlers.SongErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Failure 403 {object} handlers.SongErrorResponse "Not the playlist's owner"
// @Failure 404 {object} handlers.SongErrorResponse "Playlist not found"
// @Router /playlists/{playlistID}/songs [post]
func NewAddSongHandler(svc SongAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlistID, err := uuid.Parse(chi.URLParam(r, "playlistID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SongErrorResponse{
				Error: "Playlist not found",
			})
			return
		}

		var req AddSongRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SongErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		actorID := middlewares.GetAccountIDFromContext(r.Context())

		song, err := svc.Add(r.Context(), playlistID, actorID, req.Text, req.Link)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlaylistNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SongErrorResponse{
					Error: "Playlist not found",
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(song)
	}
}
