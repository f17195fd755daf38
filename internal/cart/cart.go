// Package cart holds per-session shopping carts keyed by external user id.
// Carts live only in process memory and are dropped on restart; nothing in
// here is persisted.
package cart

import (
	"sync"

	"ecoeats/internal/pricing"
)

// Item is a selected dish with its packaging choice. UnitPrice and DishName
// are snapshots taken when the item was added.
type Item struct {
	DishID       int64  `json:"dishId"`
	DishName     string `json:"dishName"`
	UnitPrice    int64  `json:"unitPrice"`
	Quantity     int    `json:"quantity"`
	EcoPackaging bool   `json:"ecoPackaging"`
}

// Cart is an ordered list of selected items for one session.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// Add appends an item to the cart.
func (c *Cart) Add(item Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Totals prices the cart contents with the same quantity-scaled eco fee the
// order ledger applies at checkout.
func (c *Cart) Totals() (baseTotal, ecoFeeTotal int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]pricing.Line, len(c.items))
	for i, item := range c.items {
		lines[i] = pricing.Line{
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			EcoPackaging: item.EcoPackaging,
		}
	}
	t := pricing.Compute(lines)
	return t.BaseTotal, t.EcoFeeTotal
}

// Store hands out carts per external user id, creating one on first
// reference.
type Store struct {
	mu    sync.Mutex
	carts map[int64]*Cart
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[int64]*Cart)}
}

// Get returns the cart for the given external user id, creating it if the
// session has none yet.
func (s *Store) Get(externalID int64) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[externalID]
	if !ok {
		c = &Cart{}
		s.carts[externalID] = c
	}
	return c
}

// Clear drops the cart for the given external user id.
func (s *Store) Clear(externalID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, externalID)
}
