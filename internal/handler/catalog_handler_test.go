package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecoeats/internal/model"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockCatalogService) GetRestaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockCatalogService) ListDishes(ctx context.Context, restaurantID int64) ([]model.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockCatalogService) GetDish(ctx context.Context, id int64) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

func TestCatalogHandler_ListRestaurants(t *testing.T) {
	logger := zerolog.Nop()

	restaurants := []model.Restaurant{
		{ID: 1, Name: "Restaurant A", Emblem: "🍕", Description: "Italian cuisine"},
		{ID: 2, Name: "Restaurant B", Emblem: "🍜", Description: "Asian cuisine"},
	}

	tests := []struct {
		name           string
		mockReturn     []model.Restaurant
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			mockReturn:     restaurants,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Service error",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewCatalogHandler(mockService, logger)

			mockService.On("ListRestaurants", mock.Anything).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
			w := httptest.NewRecorder()

			handler.ListRestaurants(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.mockError == nil {
				var got []model.Restaurant
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.mockReturn, got)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_GetRestaurant(t *testing.T) {
	logger := zerolog.Nop()

	restaurant := &model.Restaurant{ID: 1, Name: "Restaurant A"}

	tests := []struct {
		name           string
		id             string
		mockReturn     *model.Restaurant
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			id:             "1",
			mockReturn:     restaurant,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Restaurant not found",
			id:             "404",
			mockError:      model.ErrRestaurantNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid id",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewCatalogHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetRestaurant", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/restaurants/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetRestaurant(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestCatalogHandler_ListDishes(t *testing.T) {
	logger := zerolog.Nop()

	dishes := []model.Dish{
		{ID: 1, RestaurantID: 1, Name: "Margherita Pizza", Price: 2500},
		{ID: 2, RestaurantID: 1, Name: "Caesar Salad", Price: 1800},
	}

	mockService := new(MockCatalogService)
	handler := NewCatalogHandler(mockService, logger)

	mockService.On("ListDishes", mock.Anything, int64(1)).Return(dishes, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/1/dishes", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.ListDishes(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.Dish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, dishes, got)

	mockService.AssertExpectations(t)
}

func TestCatalogHandler_GetDish(t *testing.T) {
	logger := zerolog.Nop()

	dish := &model.Dish{ID: 1, RestaurantID: 1, Name: "Margherita Pizza", Price: 2500}

	tests := []struct {
		name           string
		id             string
		mockReturn     *model.Dish
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			id:             "1",
			mockReturn:     dish,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Dish not found",
			id:             "404",
			mockError:      model.ErrDishNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid id",
			id:             "-1",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			handler := NewCatalogHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetDish", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/dishes/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetDish(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}
