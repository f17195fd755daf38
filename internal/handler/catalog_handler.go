package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"ecoeats/internal/model"
	"ecoeats/internal/service"
)

// CatalogHandler handles restaurant and dish HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListRestaurants handles GET /api/restaurants requests.
func (h *CatalogHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListRestaurants(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, restaurants)
}

// GetRestaurant handles GET /api/restaurants/{id} requests.
func (h *CatalogHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	restaurant, err := h.service.GetRestaurant(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, restaurant)
}

// ListDishes handles GET /api/restaurants/{id}/dishes requests.
func (h *CatalogHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dishes, err := h.service.ListDishes(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dishes)
}

// GetDish handles GET /api/dishes/{id} requests.
func (h *CatalogHandler) GetDish(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dish, err := h.service.GetDish(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dish)
}

func (h *CatalogHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "invalid ID format", h.logger)
		return 0, false
	}
	return id, true
}
