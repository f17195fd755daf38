package repository

import (
	"context"
	"fmt"

	"ecoeats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const userColumns = "id, external_id, username, eco_points, orders_count, created_at"

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *userRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// FindByExternalID retrieves a user by external id.
func (r *userRepository) FindByExternalID(ctx context.Context, externalID int64) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE external_id = $1
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, externalID).Scan(
		&u.ID, &u.ExternalID, &u.Username, &u.EcoPoints, &u.OrdersCount, &u.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("external_id", externalID).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("external_id", externalID).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// Create inserts a user for the given external id. ON CONFLICT makes the
// call safe under concurrent first contacts for the same id: the existing
// row is returned instead of erroring.
func (r *userRepository) Create(ctx context.Context, externalID int64, username string) (*model.User, error) {
	query := `
		INSERT INTO users (external_id, username)
		VALUES ($1, $2)
		ON CONFLICT (external_id) DO UPDATE SET external_id = EXCLUDED.external_id
		RETURNING ` + userColumns + `
	`

	var u model.User
	err := r.pool.QueryRow(ctx, query, externalID, username).Scan(
		&u.ID, &u.ExternalID, &u.Username, &u.EcoPoints, &u.OrdersCount, &u.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("external_id", externalID).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Debug().
		Int64("external_id", externalID).
		Int64("user_id", u.ID).
		Msg("user row ensured")

	return &u, nil
}

// LockByExternalID retrieves a user with FOR UPDATE inside the transaction.
// The row lock serializes concurrent checkouts for the same user, which is
// what protects the read-modify-write of eco_points and orders_count.
func (r *userRepository) LockByExternalID(ctx context.Context, tx pgx.Tx, externalID int64) (*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE external_id = $1
		FOR UPDATE
	`

	var u model.User
	err := tx.QueryRow(ctx, query, externalID).Scan(
		&u.ID, &u.ExternalID, &u.Username, &u.EcoPoints, &u.OrdersCount, &u.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("external_id", externalID).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("external_id", externalID).Msg("failed to lock user row")
		return nil, fmt.Errorf("failed to lock user row: %w", err)
	}

	return &u, nil
}

// ApplyCheckout credits points and bumps the order counter in one statement.
func (r *userRepository) ApplyCheckout(ctx context.Context, tx pgx.Tx, userID int64, points int) error {
	query := `
		UPDATE users
		SET eco_points = eco_points + $1, orders_count = orders_count + 1
		WHERE id = $2
	`

	tag, err := tx.Exec(ctx, query, points, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to update user counters")
		return fmt.Errorf("failed to update user counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update user counters: user %d not found", userID)
	}

	return nil
}

// AdjustPoints applies a signed delta and returns the new balance.
func (r *userRepository) AdjustPoints(ctx context.Context, tx pgx.Tx, userID, delta int64) (int64, error) {
	query := `
		UPDATE users
		SET eco_points = eco_points + $1
		WHERE id = $2
		RETURNING eco_points
	`

	var balance int64
	err := tx.QueryRow(ctx, query, delta, userID).Scan(&balance)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to adjust user points")
		return 0, fmt.Errorf("failed to adjust user points: %w", err)
	}

	return balance, nil
}
