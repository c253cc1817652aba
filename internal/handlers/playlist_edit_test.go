package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mjones-dev/playlist-manager/internal/models"
	"github.com/mjones-dev/playlist-manager/internal/services"
)

func TestEditPlaylistHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playlistID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	newEditRequest := func(actorID uuid.UUID, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPut, "/playlists/"+playlistID.String(), bytes.NewBufferString(body))
		req = withURLParam(req, "playlistID", playlistID.String())
		return withActor(req, actorID)
	}

	t.Run("owner edits", func(t *testing.T) {
		mockSvc := NewMockPlaylistEditor(ctrl)
		mockSvc.EXPECT().
			Edit(gomock.Any(), playlistID, ownerID, "new text").
			Return(&models.PlaylistDB{PlaylistID: playlistID, Text: "new text", OwnerID: ownerID}, nil)

		handler := NewEditPlaylistHandler(mockSvc)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, newEditRequest(ownerID, `{"text":"new text"}`))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.PlaylistDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "new text", resp.Text)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		mockSvc := NewMockPlaylistEditor(ctrl)
		mockSvc.EXPECT().
			Edit(gomock.Any(), playlistID, strangerID, "new text").
			Return(nil, services.ErrNotOwner)

		handler := NewEditPlaylistHandler(mockSvc)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, newEditRequest(strangerID, `{"text":"new text"}`))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unknown playlist", func(t *testing.T) {
		mockSvc := NewMockPlaylistEditor(ctrl)
		mockSvc.EXPECT().
			Edit(gomock.Any(), playlistID, ownerID, "new text").
			Return(nil, services.ErrPlaylistNotFound)

		handler := NewEditPlaylistHandler(mockSvc)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, newEditRequest(ownerID, `{"text":"new text"}`))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockPlaylistEditor(ctrl)

		handler := NewEditPlaylistHandler(mockSvc)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, newEditRequest(ownerID, `{invalid`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
