package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mjones-dev/playlist-manager/internal/jwt"
	"github.com/mjones-dev/playlist-manager/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionGetter resolves a session id to an account id.
// A nil result without error means the session is absent or expired.
type SessionGetter interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*uuid.UUID, error)
}

type authContextKey struct{}

var accountIDKey = authContextKey{}

type sessionContextKey struct{}

var sessionIDKey = sessionContextKey{}

// AuthMiddleware returns a middleware that validates the bearer token and
// requires its session to still exist. On success the acting account id
// and session id are stored in the request context.
func AuthMiddleware(tokener Tokener, sessions SessionGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			accountID, err := sessions.Get(ctx, claims.SessionID)
			if err != nil {
				logger.Log.Errorw("session lookup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if accountID == nil || *accountID != claims.AccountID {
				logger.Log.Errorw("session invalid or expired", "session_id", claims.SessionID)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetAccountIDToContext(ctx, *accountID)
			ctx = SetSessionIDToContext(ctx, claims.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetAccountIDToContext stores the acting account id in the context.
func SetAccountIDToContext(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// SetSessionIDToContext stores the current session id in the context.
func SetSessionIDToContext(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetAccountIDFromContext returns the acting account id, or uuid.Nil when
// the request is anonymous.
func GetAccountIDFromContext(ctx context.Context) uuid.UUID {
	accountID, _ := ctx.Value(accountIDKey).(uuid.UUID)
	return accountID
}

// GetSessionIDFromContext returns the current session id, or uuid.Nil when
// the request is anonymous.
func GetSessionIDFromContext(ctx context.Context) uuid.UUID {
	sessionID, _ := ctx.Value(sessionIDKey).(uuid.UUID)
	return sessionID
}
