package service

import (
	"context"

	"ecoeats/internal/model"
)

// UserService defines the interface for user business logic.
type UserService interface {
	// GetOrCreate returns the user with the given external id, creating it
	// first if it does not exist. The operation is idempotent.
	GetOrCreate(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)

	// Get returns the user with the given external id.
	Get(ctx context.Context, externalID int64) (*model.User, error)

	// Stats returns aggregate statistics for the given user.
	Stats(ctx context.Context, externalID int64) (*model.UserStats, error)

	// AddPoints applies a points adjustment to the user's ledger and returns
	// the resulting balance.
	AddPoints(ctx context.Context, externalID int64, req *model.AddPointsRequest) (*model.BalanceResponse, error)
}

// CatalogService defines the interface for catalog business logic.
type CatalogService interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*model.Restaurant, error)
	ListDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error)
	GetDish(ctx context.Context, id int64) (*model.Dish, error)
}

// OrderService defines the interface for order business logic.
type OrderService interface {
	// Checkout validates the requested line items, prices them, and records
	// the order, points, and user counters in a single transaction.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)

	// GetByID returns the order with its line items.
	GetByID(ctx context.Context, id int64) (*model.OrderDetail, error)
}

// CatalogCache defines the caching operations the catalog service depends on.
// A nil result with a nil error means a cache miss.
type CatalogCache interface {
	GetRestaurants(ctx context.Context) ([]model.Restaurant, error)
	SetRestaurants(ctx context.Context, restaurants []model.Restaurant) error
	GetDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error)
	SetDishes(ctx context.Context, restaurantID int64, dishes []model.Dish) error
}
