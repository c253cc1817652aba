package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mjones-dev/playlist-manager/internal/middlewares"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), sessionID).Return(nil)

		handler := NewLogoutHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req = req.WithContext(middlewares.SetSessionIDToContext(req.Context(), sessionID))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("repeated logout still succeeds", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), sessionID).Return(nil).Times(2)

		handler := NewLogoutHandler(mockSvc)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			req = req.WithContext(middlewares.SetSessionIDToContext(req.Context(), sessionID))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), sessionID).Return(errors.New("redis down"))

		handler := NewLogoutHandler(mockSvc)
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req = req.WithContext(middlewares.SetSessionIDToContext(req.Context(), sessionID))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
