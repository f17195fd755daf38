package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"ecoeats/internal/cache"
	"ecoeats/internal/cart"
	"ecoeats/internal/config"
	"ecoeats/internal/database"
	"ecoeats/internal/events"
	"ecoeats/internal/handler"
	"ecoeats/internal/repository"
	"ecoeats/internal/router"
	"ecoeats/internal/seed"
	"ecoeats/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting ecoeats API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply schema migrations
	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Seed the catalog
	if cfg.Catalog.SeedOnStart {
		catalog := seed.Default()

		if cfg.Catalog.File != "" {
			fileLoader := seed.NewFileLoader(logger)
			var loader seed.Loader = fileLoader

			if cfg.Catalog.S3Enabled {
				s3Loader, err := seed.NewS3Loader(ctx, cfg.Catalog.S3Bucket, cfg.Catalog.S3Region, logger)
				if err != nil {
					logger.Warn().
						Err(err).
						Msg("failed to initialise S3 loader, falling back to local file system only")
				} else {
					loader = seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Catalog.S3Prefix, true, logger)
				}
			}

			loaded, err := loader.Load(ctx, cfg.Catalog.File)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("file", cfg.Catalog.File).
					Msg("failed to load catalog file, using built-in catalog")
			} else {
				catalog = loaded
			}
		}

		if err := seed.Run(ctx, pool, catalog, logger); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	catalogRepo := repository.NewCatalogRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	pointsRepo := repository.NewPointsRepository(pool, logger)

	// Initialize optional catalog cache
	var catalogCache service.CatalogCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address()})
		defer redisClient.Close()
		catalogCache = cache.NewCatalogCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second, logger)
		logger.Info().Str("address", cfg.Redis.Address()).Msg("catalog cache enabled")
	}

	// Initialize optional order event publisher
	var publisher events.Publisher
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer publisher.Close()
		logger.Info().
			Strs("brokers", cfg.Kafka.Brokers).
			Str("topic", cfg.Kafka.Topic).
			Msg("order event publishing enabled")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, orderRepo, pointsRepo, logger)
	catalogService := service.NewCatalogService(catalogRepo, catalogCache, logger)
	orderService := service.NewOrderService(orderRepo, userRepo, catalogRepo, pointsRepo, publisher, logger)
	qrGenerator := &service.DefaultQRGenerator{BaseURL: cfg.Server.PublicURL}

	// Initialize HTTP handlers
	userHandler := handler.NewUserHandler(userService, logger)
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, qrGenerator, logger)
	cartHandler := handler.NewCartHandler(cart.NewStore(), catalogService, orderService, logger)

	// Initialize router
	mux := router.New(userHandler, catalogHandler, orderHandler, cartHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
