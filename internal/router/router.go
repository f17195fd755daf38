package router

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"ecoeats/internal/handler"
	"ecoeats/internal/middleware"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	cartHandler *handler.CartHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("POST /api/users", userHandler.Create)
	mux.HandleFunc("GET /api/users/{externalId}", userHandler.Get)
	mux.HandleFunc("GET /api/users/{externalId}/stats", userHandler.Stats)
	mux.HandleFunc("POST /api/users/{externalId}/points", userHandler.AddPoints)

	mux.HandleFunc("GET /api/restaurants", catalogHandler.ListRestaurants)
	mux.HandleFunc("GET /api/restaurants/{id}", catalogHandler.GetRestaurant)
	mux.HandleFunc("GET /api/restaurants/{id}/dishes", catalogHandler.ListDishes)
	mux.HandleFunc("GET /api/dishes/{id}", catalogHandler.GetDish)

	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetByID)
	mux.HandleFunc("GET /api/orders/{id}/qrcode", orderHandler.QRCode)

	mux.HandleFunc("GET /api/cart/{externalId}", cartHandler.Get)
	mux.HandleFunc("POST /api/cart/{externalId}/items", cartHandler.AddItem)
	mux.HandleFunc("DELETE /api/cart/{externalId}", cartHandler.Clear)
	mux.HandleFunc("POST /api/cart/{externalId}/checkout", cartHandler.Checkout)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-API-Key", middleware.RequestIDHeader},
	})

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth.
	// RequestID runs before Logging so the access log sees the id.
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = corsHandler.Handler(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
