package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecoeats/internal/model"
)

// MockCatalogRepository is a mock implementation of CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockCatalogRepository) GetRestaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockCatalogRepository) ListDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockCatalogRepository) GetDish(ctx context.Context, id int64) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func (m *MockCatalogRepository) GetDishesByIDs(ctx context.Context, ids []int64) ([]model.Dish, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

// MockCatalogCache is a mock implementation of CatalogCache.
type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) GetRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockCatalogCache) SetRestaurants(ctx context.Context, restaurants []model.Restaurant) error {
	args := m.Called(ctx, restaurants)
	return args.Error(0)
}

func (m *MockCatalogCache) GetDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockCatalogCache) SetDishes(ctx context.Context, restaurantID int64, dishes []model.Dish) error {
	args := m.Called(ctx, restaurantID, dishes)
	return args.Error(0)
}

func testRestaurants() []model.Restaurant {
	return []model.Restaurant{
		{ID: 1, Name: "Restaurant A", Emblem: "🍕", Description: "Italian cuisine"},
		{ID: 2, Name: "Restaurant B", Emblem: "🍜", Description: "Asian cuisine"},
	}
}

func TestCatalogService_ListRestaurants_CacheMiss(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	restaurants := testRestaurants()

	mockRepo := new(MockCatalogRepository)
	mockCache := new(MockCatalogCache)

	service := NewCatalogService(mockRepo, mockCache, logger)

	mockCache.On("GetRestaurants", ctx).Return(nil, nil)
	mockRepo.On("ListRestaurants", ctx).Return(restaurants, nil)
	mockCache.On("SetRestaurants", ctx, restaurants).Return(nil)

	result, err := service.ListRestaurants(ctx)

	require.NoError(t, err)
	assert.Equal(t, restaurants, result)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCatalogService_ListRestaurants_CacheHit(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	restaurants := testRestaurants()

	mockRepo := new(MockCatalogRepository)
	mockCache := new(MockCatalogCache)

	service := NewCatalogService(mockRepo, mockCache, logger)

	mockCache.On("GetRestaurants", ctx).Return(restaurants, nil)

	result, err := service.ListRestaurants(ctx)

	require.NoError(t, err)
	assert.Equal(t, restaurants, result)

	mockRepo.AssertNotCalled(t, "ListRestaurants")
}

func TestCatalogService_ListRestaurants_CacheErrorFallsThrough(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	restaurants := testRestaurants()

	mockRepo := new(MockCatalogRepository)
	mockCache := new(MockCatalogCache)

	service := NewCatalogService(mockRepo, mockCache, logger)

	// A broken cache must not break reads.
	mockCache.On("GetRestaurants", ctx).Return(nil, errors.New("connection refused"))
	mockRepo.On("ListRestaurants", ctx).Return(restaurants, nil)
	mockCache.On("SetRestaurants", ctx, restaurants).Return(errors.New("connection refused"))

	result, err := service.ListRestaurants(ctx)

	require.NoError(t, err)
	assert.Equal(t, restaurants, result)

	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListRestaurants_NoCache(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	restaurants := testRestaurants()

	mockRepo := new(MockCatalogRepository)

	service := NewCatalogService(mockRepo, nil, logger)

	mockRepo.On("ListRestaurants", ctx).Return(restaurants, nil)

	result, err := service.ListRestaurants(ctx)

	require.NoError(t, err)
	assert.Equal(t, restaurants, result)
}

func TestCatalogService_GetRestaurant(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	restaurant := &model.Restaurant{ID: 1, Name: "Restaurant A"}

	tests := []struct {
		name           string
		id             int64
		mockRestaurant *model.Restaurant
		mockError      error
		expectedErr    error
	}{
		{
			name:           "Success",
			id:             1,
			mockRestaurant: restaurant,
		},
		{
			name:        "Restaurant not found",
			id:          404,
			expectedErr: model.ErrRestaurantNotFound,
		},
		{
			name:      "Repository error",
			id:        1,
			mockError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCatalogRepository)

			service := NewCatalogService(mockRepo, nil, logger)

			mockRepo.On("GetRestaurant", ctx, tt.id).Return(tt.mockRestaurant, tt.mockError)

			result, err := service.GetRestaurant(ctx, tt.id)

			if tt.mockError != nil {
				require.Error(t, err)
				assert.Nil(t, result)
			} else if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockRestaurant, result)
			}
		})
	}
}

func TestCatalogService_ListDishes(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	restaurant := &model.Restaurant{ID: 1, Name: "Restaurant A"}
	dishes := testDishes()

	mockRepo := new(MockCatalogRepository)
	mockCache := new(MockCatalogCache)

	service := NewCatalogService(mockRepo, mockCache, logger)

	mockRepo.On("GetRestaurant", ctx, int64(1)).Return(restaurant, nil)
	mockCache.On("GetDishes", ctx, int64(1)).Return(nil, nil)
	mockRepo.On("ListDishes", ctx, int64(1)).Return(dishes, nil)
	mockCache.On("SetDishes", ctx, int64(1), dishes).Return(nil)

	result, err := service.ListDishes(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, dishes, result)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCatalogService_ListDishes_UnknownRestaurant(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockCatalogRepository)

	service := NewCatalogService(mockRepo, nil, logger)

	mockRepo.On("GetRestaurant", ctx, int64(404)).Return(nil, nil)

	result, err := service.ListDishes(ctx, 404)

	require.Error(t, err)
	assert.Equal(t, model.ErrRestaurantNotFound, err)
	assert.Nil(t, result)

	mockRepo.AssertNotCalled(t, "ListDishes")
}

func TestCatalogService_GetDish(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	dish := &model.Dish{ID: 1, RestaurantID: 1, Name: "Margherita Pizza", Price: 2500}

	tests := []struct {
		name        string
		id          int64
		mockDish    *model.Dish
		mockError   error
		expectedErr error
	}{
		{
			name:     "Success",
			id:       1,
			mockDish: dish,
		},
		{
			name:        "Dish not found",
			id:          404,
			expectedErr: model.ErrDishNotFound,
		},
		{
			name:      "Repository error",
			id:        1,
			mockError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCatalogRepository)

			service := NewCatalogService(mockRepo, nil, logger)

			mockRepo.On("GetDish", ctx, tt.id).Return(tt.mockDish, tt.mockError)

			result, err := service.GetDish(ctx, tt.id)

			if tt.mockError != nil {
				require.Error(t, err)
				assert.Nil(t, result)
			} else if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockDish, result)
			}
		})
	}
}
