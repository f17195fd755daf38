package model

import "time"

// Order statuses. Checkout always writes completed; pending and cancelled
// exist for tooling that manages orders out of band.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is a persisted checkout. Totals are denormalized sums over the
// order's items and are immutable once written.
type Order struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	TotalAmount int64     `json:"totalAmount" db:"total_amount"`
	EcoFeeTotal int64     `json:"ecoFeeTotal" db:"eco_fee_total"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// OrderItem is a line item in an order. Price is the unit price snapshot
// taken at checkout time, so historical orders are immune to later menu
// price changes. EcoFee is the per-unit packaging surcharge snapshot.
type OrderItem struct {
	ID           int64 `json:"-" db:"id"`
	OrderID      int64 `json:"-" db:"order_id"`
	DishID       int64 `json:"dishId" db:"dish_id"`
	Quantity     int   `json:"quantity" db:"quantity"`
	Price        int64 `json:"price" db:"price"`
	EcoPackaging bool  `json:"ecoPackaging" db:"eco_packaging"`
	EcoFee       int64 `json:"ecoFee" db:"eco_fee"`
}

// LineItemRequest is a requested (dish, quantity, packaging) tuple submitted
// at checkout, prior to validation against the catalog.
type LineItemRequest struct {
	DishID       int64 `json:"dishId"`
	Quantity     int   `json:"quantity"`
	EcoPackaging bool  `json:"ecoPackaging"`
}

// CheckoutRequest is the request payload for creating an order.
type CheckoutRequest struct {
	ExternalID int64             `json:"externalId"`
	Items      []LineItemRequest `json:"items"`
}

// CheckoutResponse reports the persisted order's computed totals.
type CheckoutResponse struct {
	OrderID      int64 `json:"orderId"`
	TotalAmount  int64 `json:"totalAmount"`
	EcoFeeTotal  int64 `json:"ecoFeeTotal"`
	PointsEarned int   `json:"pointsEarned"`
}

// OrderDetail is an order together with its line items.
type OrderDetail struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}
