package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mjones-dev/playlist-manager/internal/services"
)

func TestDeleteSongHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	songID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	newDeleteRequest := func(actorID uuid.UUID) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/songs/"+songID.String(), nil)
		req = withURLParam(req, "songID", songID.String())
		return withActor(req, actorID)
	}

	t.Run("playlist owner deletes", func(t *testing.T) {
		mockSvc := NewMockSongDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), songID, ownerID).Return(nil)

		handler := NewDeleteSongHandler(mockSvc)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, newDeleteRequest(ownerID))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		mockSvc := NewMockSongDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), songID, strangerID).Return(services.ErrNotOwner)

		handler := NewDeleteSongHandler(mockSvc)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, newDeleteRequest(strangerID))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unknown song", func(t *testing.T) {
		mockSvc := NewMockSongDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), songID, ownerID).Return(services.ErrSongNotFound)

		handler := NewDeleteSongHandler(mockSvc)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, newDeleteRequest(ownerID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
