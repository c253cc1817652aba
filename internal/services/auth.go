package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/models"
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByUsername(ctx context.Context, username string) (*models.AccountDB, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (*models.AccountDB, error)
}

// SessionSaver defines session lifecycle operations used by the auth service.
type SessionSaver interface {
	Save(ctx context.Context, accountID uuid.UUID) (uuid.UUID, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*uuid.UUID, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// TokenGenerator defines an interface for generating session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, sessionID, accountID uuid.UUID) (string, error)
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   AccountReader
	writer   AccountWriter
	sessions SessionSaver
	tokens   TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AccountReader, writer AccountWriter, sessions SessionSaver, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register creates a new account. Only the bcrypt hash of the password is stored.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.AccountDB, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("username already taken", "username", username)
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	account, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save account", "err", err)
		return nil, err
	}

	return account, nil
}

// Login authenticates an account, establishes a session and returns a
// signed token. Unknown usernames and wrong passwords both yield
// ErrInvalidCredentials so callers cannot enumerate usernames.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", err
	}
	if account == nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	// A malformed stored hash also compares as a mismatch.
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	sessionID, err := svc.sessions.Save(ctx, account.AccountID)
	if err != nil {
		logger.Log.Errorw("failed to establish session", "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, sessionID, account.AccountID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Logout invalidates the session. Logging out an already-invalidated
// session is not an error.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return svc.sessions.Delete(ctx, sessionID)
}

// CurrentIdentity resolves a session id to its account, or nil when the
// session is absent, expired or invalid.
func (svc *AuthService) CurrentIdentity(ctx context.Context, sessionID uuid.UUID) (*models.AccountDB, error) {
	accountID, err := svc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if accountID == nil {
		return nil, nil
	}
	return svc.reader.GetByID(ctx, *accountID)
}
