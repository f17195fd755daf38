package model

import "time"

// Ledger entry reasons written by the system. Reason is free-form in the
// schema; these are the values the core itself uses.
const (
	PointsReasonEcoPackaging    = "eco_packaging"
	PointsReasonContainerReturn = "container_return"
)

// PointsEntry is one append-only record in the eco points ledger. The user's
// balance is the running sum of entry amounts.
type PointsEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Amount    int64     `json:"amount" db:"amount"`
	Reason    string    `json:"reason" db:"reason"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AddPointsRequest is the payload for crediting loyalty points.
type AddPointsRequest struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// BalanceResponse reports a user's eco points balance after an adjustment.
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}
