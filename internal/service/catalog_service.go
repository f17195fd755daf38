package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"ecoeats/internal/model"
	"ecoeats/internal/repository"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	cache       CatalogCache
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service. The cache may be nil, in
// which case every read goes straight to the database.
func NewCatalogService(catalogRepo repository.CatalogRepository, cache CatalogCache, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		cache:       cache,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRestaurants(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("restaurant cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	restaurants, err := s.catalogRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetRestaurants(ctx, restaurants); err != nil {
			s.logger.Warn().Err(err).Msg("restaurant cache write failed")
		}
	}

	return restaurants, nil
}

func (s *catalogService) GetRestaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	restaurant, err := s.catalogRepo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, model.ErrRestaurantNotFound
	}

	return restaurant, nil
}

func (s *catalogService) ListDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	restaurant, err := s.catalogRepo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, model.ErrRestaurantNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.GetDishes(ctx, restaurantID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("dish cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	dishes, err := s.catalogRepo.ListDishes(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetDishes(ctx, restaurantID, dishes); err != nil {
			s.logger.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("dish cache write failed")
		}
	}

	return dishes, nil
}

func (s *catalogService) GetDish(ctx context.Context, id int64) (*model.Dish, error) {
	dish, err := s.catalogRepo.GetDish(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dish: %w", err)
	}
	if dish == nil {
		return nil, model.ErrDishNotFound
	}

	return dish, nil
}
