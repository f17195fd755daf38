package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"ecoeats/internal/model"
	"ecoeats/internal/service"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// Create handles POST /api/users requests. Registration is idempotent:
// posting an already known external id returns the existing user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.ExternalID <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "externalId is required", h.logger)
		return
	}

	user, err := h.service.GetOrCreate(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Get handles GET /api/users/{externalId} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	externalID, ok := h.externalID(w, r)
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), externalID)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Stats handles GET /api/users/{externalId}/stats requests.
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	externalID, ok := h.externalID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), externalID)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// AddPoints handles POST /api/users/{externalId}/points requests.
func (h *UserHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	externalID, ok := h.externalID(w, r)
	if !ok {
		return
	}

	var req model.AddPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	balance, err := h.service.AddPoints(r.Context(), externalID, &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

func (h *UserHandler) externalID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	externalID, err := strconv.ParseInt(r.PathValue("externalId"), 10, 64)
	if err != nil || externalID <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "invalid user ID format", h.logger)
		return 0, false
	}
	return externalID, true
}
