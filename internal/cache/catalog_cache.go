// Package cache provides a Redis-backed read cache for catalog data. The
// catalog is immutable reference data, so entries only ever expire by TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ecoeats/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	restaurantsKey  = "catalog:restaurants"
	dishesKeyPrefix = "catalog:dishes:"
)

// CatalogCache caches catalog reads in Redis. A miss is reported as
// (nil, nil); callers treat cache errors as a miss and fall through to the
// repository.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCatalogCache creates a catalog cache over the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CatalogCache {
	return &CatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "catalog-cache").Logger(),
	}
}

// GetRestaurants returns the cached restaurant list, or (nil, nil) on miss.
func (c *CatalogCache) GetRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	raw, err := c.client.Get(ctx, restaurantsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read restaurants from cache: %w", err)
	}

	var restaurants []model.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		return nil, fmt.Errorf("failed to decode cached restaurants: %w", err)
	}
	return restaurants, nil
}

// SetRestaurants stores the restaurant list with the configured TTL.
func (c *CatalogCache) SetRestaurants(ctx context.Context, restaurants []model.Restaurant) error {
	payload, err := json.Marshal(restaurants)
	if err != nil {
		return fmt.Errorf("failed to encode restaurants for cache: %w", err)
	}

	if err := c.client.Set(ctx, restaurantsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write restaurants to cache: %w", err)
	}

	c.logger.Debug().Int("count", len(restaurants)).Msg("restaurants cached")
	return nil
}

// GetDishes returns the cached dish list for a restaurant, or (nil, nil) on miss.
func (c *CatalogCache) GetDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	raw, err := c.client.Get(ctx, dishesKey(restaurantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dishes from cache: %w", err)
	}

	var dishes []model.Dish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		return nil, fmt.Errorf("failed to decode cached dishes: %w", err)
	}
	return dishes, nil
}

// SetDishes stores a restaurant's dish list with the configured TTL.
func (c *CatalogCache) SetDishes(ctx context.Context, restaurantID int64, dishes []model.Dish) error {
	payload, err := json.Marshal(dishes)
	if err != nil {
		return fmt.Errorf("failed to encode dishes for cache: %w", err)
	}

	if err := c.client.Set(ctx, dishesKey(restaurantID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write dishes to cache: %w", err)
	}

	c.logger.Debug().
		Int64("restaurant_id", restaurantID).
		Int("count", len(dishes)).
		Msg("dishes cached")
	return nil
}

func dishesKey(restaurantID int64) string {
	return dishesKeyPrefix + strconv.FormatInt(restaurantID, 10)
}
