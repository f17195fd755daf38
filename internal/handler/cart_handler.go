package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"ecoeats/internal/cart"
	"ecoeats/internal/model"
	"ecoeats/internal/service"
)

// CartHandler handles in-memory cart HTTP requests. Carts are keyed by the
// caller's external user id and exist only until checkout or restart.
type CartHandler struct {
	store   *cart.Store
	catalog service.CatalogService
	orders  service.OrderService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(store *cart.Store, catalog service.CatalogService, orders service.OrderService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		store:   store,
		catalog: catalog,
		orders:  orders,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// AddItemRequest is the payload for adding a dish to the cart.
type AddItemRequest struct {
	DishID       int64 `json:"dishId"`
	Quantity     int   `json:"quantity"`
	EcoPackaging bool  `json:"ecoPackaging"`
}

// CartView is the response body for cart reads. GrandTotal is display-only;
// the order ledger keeps base and fee totals separate.
type CartView struct {
	Items       []cart.Item `json:"items"`
	BaseTotal   int64       `json:"baseTotal"`
	EcoFeeTotal int64       `json:"ecoFeeTotal"`
	GrandTotal  int64       `json:"grandTotal"`
}

// Get handles GET /api/cart/{externalId} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	externalID, ok := h.externalID(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.view(externalID))
}

// AddItem handles POST /api/cart/{externalId}/items requests. The dish is
// resolved against the catalog so the cart carries a price snapshot.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	externalID, ok := h.externalID(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		writeDomainError(w, r, model.ErrInvalidQuantity, h.logger)
		return
	}

	dish, err := h.catalog.GetDish(r.Context(), req.DishID)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	h.store.Get(externalID).Add(cart.Item{
		DishID:       dish.ID,
		DishName:     dish.Name,
		UnitPrice:    dish.Price,
		Quantity:     req.Quantity,
		EcoPackaging: req.EcoPackaging,
	})

	writeJSON(w, http.StatusCreated, h.view(externalID))
}

// Clear handles DELETE /api/cart/{externalId} requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	externalID, ok := h.externalID(w, r)
	if !ok {
		return
	}

	h.store.Clear(externalID)
	w.WriteHeader(http.StatusNoContent)
}

// Checkout handles POST /api/cart/{externalId}/checkout requests, draining
// the cart into a persisted order. The cart is cleared only on success so a
// failed checkout can be retried.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	externalID, ok := h.externalID(w, r)
	if !ok {
		return
	}

	items := h.store.Get(externalID).Items()
	if len(items) == 0 {
		writeDomainError(w, r, model.ErrEmptyOrder, h.logger)
		return
	}

	req := &model.CheckoutRequest{
		ExternalID: externalID,
		Items:      make([]model.LineItemRequest, len(items)),
	}
	for i, item := range items {
		req.Items[i] = model.LineItemRequest{
			DishID:       item.DishID,
			Quantity:     item.Quantity,
			EcoPackaging: item.EcoPackaging,
		}
	}

	resp, err := h.orders.Checkout(r.Context(), req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	h.store.Clear(externalID)

	writeJSON(w, http.StatusCreated, resp)
}

func (h *CartHandler) view(externalID int64) CartView {
	c := h.store.Get(externalID)
	base, ecoFee := c.Totals()
	return CartView{
		Items:       c.Items(),
		BaseTotal:   base,
		EcoFeeTotal: ecoFee,
		GrandTotal:  base + ecoFee,
	}
}

func (h *CartHandler) externalID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	externalID, err := strconv.ParseInt(r.PathValue("externalId"), 10, 64)
	if err != nil || externalID <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "invalid user ID format", h.logger)
		return 0, false
	}
	return externalID, true
}
