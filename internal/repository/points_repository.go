package repository

import (
	"context"
	"fmt"

	"ecoeats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// pointsRepository implements the PointsRepository interface using
// PostgreSQL. The ledger is append-only: entries are never updated or
// deleted.
type pointsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPointsRepository creates a new PostgreSQL-backed points repository.
func NewPointsRepository(pool *pgxpool.Pool, logger zerolog.Logger) PointsRepository {
	return &pointsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "points").Logger(),
	}
}

// AppendEntry inserts a ledger entry within the provided transaction.
func (r *pointsRepository) AppendEntry(ctx context.Context, tx pgx.Tx, entry *model.PointsEntry) error {
	query := `
		INSERT INTO eco_points (user_id, amount, reason)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query, entry.UserID, entry.Amount, entry.Reason).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("user_id", entry.UserID).
			Str("reason", entry.Reason).
			Msg("failed to append points entry")
		return fmt.Errorf("failed to append points entry: %w", err)
	}

	r.logger.Debug().
		Int64("user_id", entry.UserID).
		Int64("amount", entry.Amount).
		Str("reason", entry.Reason).
		Msg("points entry appended")

	return nil
}

// ListForUser retrieves a user's ledger entries, oldest first.
func (r *pointsRepository) ListForUser(ctx context.Context, userID int64) ([]model.PointsEntry, error) {
	query := `
		SELECT id, user_id, amount, reason, created_at
		FROM eco_points
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to query points entries")
		return nil, fmt.Errorf("failed to query points entries: %w", err)
	}
	defer rows.Close()

	var entries []model.PointsEntry
	for rows.Next() {
		var e model.PointsEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Reason, &e.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan points entry row")
			return nil, fmt.Errorf("failed to scan points entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating points entry rows")
		return nil, fmt.Errorf("error iterating points entries: %w", err)
	}

	return entries, nil
}
