package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/models"
)

// PlaylistLister defines the interface that the service must implement.
type PlaylistLister interface {
	List(ctx context.Context) ([]models.PlaylistDB, error)
}

// NewListPlaylistsHandler returns an HTTP handler listing all playlists.
// Readable without authentication.
// @Summary List playlists
// @Tags playlists
// @Produce json
// @Success 200 {array} models.PlaylistDB "All playlists"
// @Router /playlists [get]
func NewListPlaylistsHandler(svc PlaylistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlists, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PlaylistErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if playlists == nil {
			playlists = []models.PlaylistDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(playlists)
	}
}
