// Package seed populates the catalog reference data on first start. Seeding
// is idempotent: it is a no-op whenever any restaurant already exists.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Catalog is a seedable reference data set.
type Catalog struct {
	Restaurants []RestaurantSeed `json:"restaurants"`
}

// RestaurantSeed is one restaurant with its menu.
type RestaurantSeed struct {
	Name        string     `json:"name"`
	Emblem      string     `json:"emblem"`
	Description string     `json:"description"`
	Dishes      []DishSeed `json:"dishes"`
}

// DishSeed is one menu entry. Price is in whole currency units.
type DishSeed struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

// Default returns the built-in catalog used when no external catalog file is
// configured.
func Default() Catalog {
	return Catalog{
		Restaurants: []RestaurantSeed{
			{
				Name:        "Restaurant A",
				Emblem:      "🍕",
				Description: "Italian cuisine",
				Dishes: []DishSeed{
					{Name: "Margherita Pizza", Price: 2500, Description: "Classic pizza"},
					{Name: "Pasta Carbonara", Price: 3200, Description: "Pasta with bacon and cream"},
					{Name: "Caesar Salad", Price: 1800, Description: "Fresh salad"},
				},
			},
			{
				Name:        "Restaurant B",
				Emblem:      "🍜",
				Description: "Asian cuisine",
				Dishes: []DishSeed{
					{Name: "Ramen", Price: 2800, Description: "Japanese noodles"},
					{Name: "Sushi Set", Price: 4500, Description: "Assorted sushi"},
					{Name: "Tom Yum", Price: 2200, Description: "Spicy Thai soup"},
				},
			},
			{
				Name:        "Restaurant C",
				Emblem:      "🍔",
				Description: "American cuisine",
				Dishes: []DishSeed{
					{Name: "Classic Burger", Price: 2000, Description: "Classic burger"},
					{Name: "French Fries", Price: 800, Description: "Crispy fries"},
					{Name: "Milkshake", Price: 1200, Description: "Sweet shake"},
				},
			},
		},
	}
}

// Run seeds the catalog if the restaurants table is empty. Re-running never
// duplicates rows.
func Run(ctx context.Context, pool *pgxpool.Pool, catalog Catalog, logger zerolog.Logger) error {
	logger = logger.With().Str("component", "seed").Logger()

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if count > 0 {
		logger.Debug().Int("restaurants", count).Msg("catalog already seeded, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	dishCount := 0
	for _, rest := range catalog.Restaurants {
		var restaurantID int64
		err := tx.QueryRow(ctx,
			"INSERT INTO restaurants (name, emblem, description) VALUES ($1, $2, $3) RETURNING id",
			rest.Name, rest.Emblem, rest.Description,
		).Scan(&restaurantID)
		if err != nil {
			return fmt.Errorf("failed to seed restaurant %q: %w", rest.Name, err)
		}

		for _, dish := range rest.Dishes {
			_, err := tx.Exec(ctx,
				"INSERT INTO dishes (restaurant_id, name, price, description) VALUES ($1, $2, $3, $4)",
				restaurantID, dish.Name, dish.Price, dish.Description,
			)
			if err != nil {
				return fmt.Errorf("failed to seed dish %q: %w", dish.Name, err)
			}
			dishCount++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info().
		Int("restaurants", len(catalog.Restaurants)).
		Int("dishes", dishCount).
		Msg("catalog seeded")

	return nil
}
