package model

import "time"

// User is a customer identified by the external id assigned by the
// conversational front-end. EcoPoints is a denormalized running balance;
// the eco_points ledger is the source of truth for audit.
type User struct {
	ID          int64     `json:"id" db:"id"`
	ExternalID  int64     `json:"externalId" db:"external_id"`
	Username    string    `json:"username,omitempty" db:"username"`
	EcoPoints   int64     `json:"ecoPoints" db:"eco_points"`
	OrdersCount int       `json:"ordersCount" db:"orders_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// UserStats summarises a user's loyalty standing.
type UserStats struct {
	EcoPoints   int64 `json:"ecoPoints"`
	OrdersCount int   `json:"ordersCount"`
	TotalOrders int   `json:"totalOrders"`
}

// CreateUserRequest is the payload for the get-or-create user operation.
type CreateUserRequest struct {
	ExternalID int64  `json:"externalId"`
	Username   string `json:"username,omitempty"`
}
