package repository

import (
	"context"
	"fmt"

	"ecoeats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogRepository implements the CatalogRepository interface using
// PostgreSQL. The catalog is reference data; this repository never writes.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// ListRestaurants retrieves all restaurants.
func (r *catalogRepository) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	query := `
		SELECT id, name, emblem, description
		FROM restaurants
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query restaurants")
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []model.Restaurant
	for rows.Next() {
		var rest model.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Emblem, &rest.Description); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan restaurant row")
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating restaurant rows")
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}

	return restaurants, nil
}

// GetRestaurant retrieves a restaurant by id.
func (r *catalogRepository) GetRestaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	query := `
		SELECT id, name, emblem, description
		FROM restaurants
		WHERE id = $1
	`

	var rest model.Restaurant
	err := r.pool.QueryRow(ctx, query, id).Scan(&rest.ID, &rest.Name, &rest.Emblem, &rest.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("restaurant_id", id).Msg("restaurant not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("restaurant_id", id).Msg("failed to query restaurant")
		return nil, fmt.Errorf("failed to query restaurant: %w", err)
	}

	return &rest, nil
}

// ListDishes retrieves the dishes of a restaurant.
func (r *catalogRepository) ListDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	query := `
		SELECT id, restaurant_id, name, price, description
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		r.logger.Error().Err(err).Int64("restaurant_id", restaurantID).Msg("failed to query dishes")
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	return scanDishes(rows, r.logger)
}

// GetDish retrieves a dish by id.
func (r *catalogRepository) GetDish(ctx context.Context, id int64) (*model.Dish, error) {
	query := `
		SELECT id, restaurant_id, name, price, description
		FROM dishes
		WHERE id = $1
	`

	var d model.Dish
	err := r.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.RestaurantID, &d.Name, &d.Price, &d.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("dish_id", id).Msg("dish not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("dish_id", id).Msg("failed to query dish")
		return nil, fmt.Errorf("failed to query dish: %w", err)
	}

	return &d, nil
}

// GetDishesByIDs retrieves the dishes whose ids exist. Unknown ids are
// absent from the result; the checkout path drops those lines.
func (r *catalogRepository) GetDishesByIDs(ctx context.Context, ids []int64) ([]model.Dish, error) {
	if len(ids) == 0 {
		return []model.Dish{}, nil
	}

	query := `
		SELECT id, restaurant_id, name, price, description
		FROM dishes
		WHERE id = ANY($1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query dishes by IDs")
		return nil, fmt.Errorf("failed to query dishes by IDs: %w", err)
	}
	defer rows.Close()

	return scanDishes(rows, r.logger)
}

func scanDishes(rows pgx.Rows, logger zerolog.Logger) ([]model.Dish, error) {
	var dishes []model.Dish
	for rows.Next() {
		var d model.Dish
		if err := rows.Scan(&d.ID, &d.RestaurantID, &d.Name, &d.Price, &d.Description); err != nil {
			logger.Error().Err(err).Msg("failed to scan dish row")
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating dish rows")
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	return dishes, nil
}
