package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the full database schema. Every statement is idempotent so the
// migration can run on every start.
const Schema = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		external_id BIGINT NOT NULL UNIQUE,
		username VARCHAR(255) NOT NULL DEFAULT '',
		eco_points BIGINT NOT NULL DEFAULT 0 CHECK (eco_points >= 0),
		orders_count INTEGER NOT NULL DEFAULT 0 CHECK (orders_count >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		emblem VARCHAR(16) NOT NULL DEFAULT '',
		description VARCHAR(500) NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS dishes (
		id BIGSERIAL PRIMARY KEY,
		restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		price BIGINT NOT NULL CHECK (price > 0),
		description VARCHAR(500) NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_dishes_restaurant_id ON dishes(restaurant_id);

	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		total_amount BIGINT NOT NULL CHECK (total_amount >= 0),
		eco_fee_total BIGINT NOT NULL DEFAULT 0 CHECK (eco_fee_total >= 0),
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
	CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

	CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		dish_id BIGINT NOT NULL REFERENCES dishes(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price BIGINT NOT NULL CHECK (price >= 0),
		eco_packaging BOOLEAN NOT NULL DEFAULT FALSE,
		eco_fee BIGINT NOT NULL DEFAULT 0 CHECK (eco_fee >= 0)
	);

	CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
	CREATE INDEX IF NOT EXISTS idx_order_items_dish_id ON order_items(dish_id);

	CREATE TABLE IF NOT EXISTS eco_points (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		amount BIGINT NOT NULL,
		reason VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_eco_points_user_id ON eco_points(user_id);
`

// Migrate applies the schema to the database.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info().Msg("database schema applied")
	return nil
}
