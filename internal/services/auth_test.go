package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/mjones-dev/playlist-manager/internal/models"
	"github.com/mjones-dev/playlist-manager/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAccountReader(ctrl)
	mockWriter := services.NewMockAccountWriter(ctrl)
	mockSessions := services.NewMockSessionSaver(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	tests := []struct {
		name            string
		username        string
		password        string
		existingAccount *models.AccountDB
		readerErr       error
		writerErr       error
		wantErr         error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pw1",
		},
		{
			name:            "username already taken",
			username:        "bob",
			password:        "pw2",
			existingAccount: &models.AccountDB{AccountID: uuid.New(), Username: "bob"},
			wantErr:         services.ErrUsernameTaken,
		},
		{
			name:            "duplicate regardless of password",
			username:        "bob",
			password:        "another-password",
			existingAccount: &models.AccountDB{AccountID: uuid.New(), Username: "bob"},
			wantErr:         services.ErrUsernameTaken,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pw",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pw",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingAccount, tt.readerErr)

			if tt.existingAccount == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any()).
					DoAndReturn(func(_ context.Context, username, passwordHash string) (*models.AccountDB, error) {
						// The stored value must be a valid bcrypt hash of the password, never plaintext.
						assert.NotEqual(t, tt.password, passwordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						return &models.AccountDB{AccountID: uuid.New(), Username: username, PasswordHash: passwordHash}, nil
					})
			}

			account, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, account.Username)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAccountReader(ctrl)
	mockWriter := services.NewMockAccountWriter(ctrl)
	mockSessions := services.NewMockSessionSaver(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	accountID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	account := &models.AccountDB{AccountID: accountID, Username: "alice", PasswordHash: string(hash)}

	t.Run("successful login", func(t *testing.T) {
		sessionID := uuid.New()
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(account, nil)
		mockSessions.EXPECT().Save(gomock.Any(), accountID).Return(sessionID, nil)
		mockTokens.EXPECT().Generate(gomock.Any(), sessionID, accountID).Return("token123", nil)

		token, err := svc.Login(context.Background(), "alice", "pw1")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(account, nil)

		_, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("unknown username yields the same error", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)

		_, err := svc.Login(context.Background(), "nobody", "anything")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("malformed stored hash compares as mismatch", func(t *testing.T) {
		broken := &models.AccountDB{AccountID: accountID, Username: "alice", PasswordHash: "not-a-bcrypt-hash"}
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(broken, nil)

		_, err := svc.Login(context.Background(), "alice", "pw1")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("session save error", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(account, nil)
		mockSessions.EXPECT().Save(gomock.Any(), accountID).Return(uuid.Nil, errors.New("redis down"))

		_, err := svc.Login(context.Background(), "alice", "pw1")
		assert.EqualError(t, err, "redis down")
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAccountReader(ctrl)
	mockWriter := services.NewMockAccountWriter(ctrl)
	mockSessions := services.NewMockSessionSaver(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	sessionID := uuid.New()

	// Logging out twice is not an error: the store's delete is idempotent.
	mockSessions.EXPECT().Delete(gomock.Any(), sessionID).Return(nil).Times(2)

	assert.NoError(t, svc.Logout(context.Background(), sessionID))
	assert.NoError(t, svc.Logout(context.Background(), sessionID))
}

func TestAuthService_CurrentIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAccountReader(ctrl)
	mockWriter := services.NewMockAccountWriter(ctrl)
	mockSessions := services.NewMockSessionSaver(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockTokens)

	sessionID := uuid.New()
	accountID := uuid.New()

	t.Run("resolves to account", func(t *testing.T) {
		mockSessions.EXPECT().Get(gomock.Any(), sessionID).Return(&accountID, nil)
		mockReader.EXPECT().GetByID(gomock.Any(), accountID).
			Return(&models.AccountDB{AccountID: accountID, Username: "alice"}, nil)

		account, err := svc.CurrentIdentity(context.Background(), sessionID)
		assert.NoError(t, err)
		assert.Equal(t, accountID, account.AccountID)
	})

	t.Run("absent session resolves to nil", func(t *testing.T) {
		mockSessions.EXPECT().Get(gomock.Any(), sessionID).Return(nil, nil)

		account, err := svc.CurrentIdentity(context.Background(), sessionID)
		assert.NoError(t, err)
		assert.Nil(t, account)
	})
}
