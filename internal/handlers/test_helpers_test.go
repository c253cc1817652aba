package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mjones-dev/playlist-manager/internal/middlewares"
)

// withURLParam attaches a chi route parameter to the request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withActor stores an acting account id in the request context, the way
// the auth middleware would.
func withActor(r *http.Request, accountID uuid.UUID) *http.Request {
	return r.WithContext(middlewares.SetAccountIDToContext(r.Context(), accountID))
}
