package repository

import (
	"context"

	"ecoeats/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// FindByExternalID retrieves a user by external id.
	// Returns (nil, nil) if the user does not exist.
	FindByExternalID(ctx context.Context, externalID int64) (*model.User, error)

	// Create inserts a user for the given external id. The insert is
	// idempotent: if the user already exists the existing row is returned.
	Create(ctx context.Context, externalID int64, username string) (*model.User, error)

	// LockByExternalID retrieves a user within the transaction, taking a
	// row lock so concurrent checkouts for the same user serialize.
	// Returns (nil, nil) if the user does not exist.
	LockByExternalID(ctx context.Context, tx pgx.Tx, externalID int64) (*model.User, error)

	// ApplyCheckout credits points and bumps the order counter for one
	// completed checkout, within the provided transaction.
	ApplyCheckout(ctx context.Context, tx pgx.Tx, userID int64, points int) error

	// AdjustPoints applies a signed delta to the user's balance within the
	// provided transaction and returns the new balance.
	AdjustPoints(ctx context.Context, tx pgx.Tx, userID, delta int64) (int64, error)
}

// CatalogRepository defines read-only access to restaurants and dishes.
type CatalogRepository interface {
	// ListRestaurants retrieves all restaurants.
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)

	// GetRestaurant retrieves a restaurant by id. Returns (nil, nil) if absent.
	GetRestaurant(ctx context.Context, id int64) (*model.Restaurant, error)

	// ListDishes retrieves the dishes of a restaurant.
	ListDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error)

	// GetDish retrieves a dish by id. Returns (nil, nil) if absent.
	GetDish(ctx context.Context, id int64) (*model.Dish, error)

	// GetDishesByIDs retrieves the dishes whose ids exist. Unknown ids are
	// simply missing from the result, not errors.
	GetDishesByIDs(ctx context.Context, ids []int64) ([]model.Dish, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction,
	// filling in the generated id and creation timestamp.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	// Returns (nil, nil, nil) if the order does not exist.
	GetByID(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error)

	// CountForUser returns the number of orders persisted for the user.
	CountForUser(ctx context.Context, userID int64) (int, error)
}

// PointsRepository defines access to the append-only eco points ledger.
type PointsRepository interface {
	// AppendEntry inserts a ledger entry within the provided transaction,
	// filling in the generated id and creation timestamp.
	AppendEntry(ctx context.Context, tx pgx.Tx, entry *model.PointsEntry) error

	// ListForUser retrieves a user's ledger entries, oldest first.
	ListForUser(ctx context.Context, userID int64) ([]model.PointsEntry, error)
}
