package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mjones-dev/playlist-manager/internal/logger"
	"github.com/mjones-dev/playlist-manager/internal/models"
)

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByUsername returns the account with the given username, or nil if absent.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, username, password_hash, created_at
		FROM accounts
		WHERE username = $1
		LIMIT 1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// GetByID returns the account with the given identifier, or nil if absent.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, username, password_hash, created_at
		FROM accounts
		WHERE account_id = $1
		LIMIT 1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db *sqlx.DB
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Save inserts a new account and returns the stored record.
// Accounts are immutable after registration, so there is no upsert here:
// a duplicate username surfaces as a unique-violation error.
func (r *AccountWriteRepository) Save(ctx context.Context, username, passwordHash string) (*models.AccountDB, error) {
	const query = `
		INSERT INTO accounts (account_id, username, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING account_id, username, password_hash, created_at
	`
	args := []any{uuid.New(), username, passwordHash}

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{args[0], username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &account, nil
}
