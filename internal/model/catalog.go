package model

// Restaurant is seeded reference data, never mutated after seeding.
type Restaurant struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Emblem      string `json:"emblem" db:"emblem"`
	Description string `json:"description,omitempty" db:"description"`
}

// Dish is a menu entry. Price is in whole currency units; money is never
// represented as floating point anywhere in the system.
type Dish struct {
	ID           int64  `json:"id" db:"id"`
	RestaurantID int64  `json:"restaurantId" db:"restaurant_id"`
	Name         string `json:"name" db:"name"`
	Price        int64  `json:"price" db:"price"`
	Description  string `json:"description,omitempty" db:"description"`
}
