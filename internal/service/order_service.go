package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"ecoeats/internal/events"
	"ecoeats/internal/model"
	"ecoeats/internal/pricing"
	"ecoeats/internal/repository"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	pointsRepo  repository.PointsRepository
	publisher   events.Publisher
	logger      zerolog.Logger
}

// NewOrderService creates a new order service. The publisher may be nil, in
// which case no events are emitted.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	catalogRepo repository.CatalogRepository,
	pointsRepo repository.PointsRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		pointsRepo:  pointsRepo,
		publisher:   publisher,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

func (s *orderService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, model.ErrEmptyOrder
	}

	ids := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, model.ErrInvalidQuantity
		}
		ids = append(ids, item.DishID)
	}

	dishes, err := s.catalogRepo.GetDishesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dishes: %w", err)
	}

	dishByID := make(map[int64]model.Dish, len(dishes))
	for _, dish := range dishes {
		dishByID[dish.ID] = dish
	}

	// Lines naming dishes no longer in the catalog are dropped rather than
	// failing the whole checkout.
	lines := make([]pricing.Line, 0, len(req.Items))
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		dish, ok := dishByID[item.DishID]
		if !ok {
			s.logger.Warn().
				Int64("dish_id", item.DishID).
				Int64("external_id", req.ExternalID).
				Msg("dropping unknown dish from checkout")
			continue
		}

		lines = append(lines, pricing.Line{
			UnitPrice:    dish.Price,
			Quantity:     item.Quantity,
			EcoPackaging: item.EcoPackaging,
		})
		items = append(items, model.OrderItem{
			DishID:       dish.ID,
			Quantity:     item.Quantity,
			Price:        dish.Price,
			EcoPackaging: item.EcoPackaging,
			EcoFee:       pricing.UnitEcoFee(item.EcoPackaging),
		})
	}

	if len(items) == 0 {
		return nil, model.ErrEmptyOrder
	}

	totals := pricing.Compute(lines)

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	user, err := s.userRepo.LockByExternalID(ctx, tx, req.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	if user == nil {
		err = model.ErrUserNotFound
		return nil, err
	}

	// TotalAmount carries only the base prices; the packaging surcharge is
	// tracked separately in EcoFeeTotal.
	order := &model.Order{
		UserID:      user.ID,
		TotalAmount: totals.BaseTotal,
		EcoFeeTotal: totals.EcoFeeTotal,
		Status:      model.OrderStatusCompleted,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if totals.PointsEarned > 0 {
		entry := &model.PointsEntry{
			UserID: user.ID,
			Amount: int64(totals.PointsEarned),
			Reason: model.PointsReasonEcoPackaging,
		}
		if err = s.pointsRepo.AppendEntry(ctx, tx, entry); err != nil {
			return nil, fmt.Errorf("failed to append points entry: %w", err)
		}
	}

	if err = s.userRepo.ApplyCheckout(ctx, tx, user.ID, totals.PointsEarned); err != nil {
		return nil, fmt.Errorf("failed to update user counters: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("user_id", user.ID).
		Int64("total_amount", order.TotalAmount).
		Int64("eco_fee_total", order.EcoFeeTotal).
		Int("points_earned", totals.PointsEarned).
		Int("items", len(items)).
		Msg("order completed")

	// Event delivery is best effort; the order is already committed.
	if s.publisher != nil {
		event := events.OrderCompleted{
			OrderID:      order.ID,
			UserID:       user.ID,
			ExternalID:   user.ExternalID,
			TotalAmount:  order.TotalAmount,
			EcoFeeTotal:  order.EcoFeeTotal,
			PointsEarned: totals.PointsEarned,
			CreatedAt:    order.CreatedAt,
		}
		if pubErr := s.publisher.PublishOrderCompleted(ctx, event); pubErr != nil {
			s.logger.Warn().Err(pubErr).Int64("order_id", order.ID).Msg("failed to publish order event")
		}
	}

	return &model.CheckoutResponse{
		OrderID:      order.ID,
		TotalAmount:  order.TotalAmount,
		EcoFeeTotal:  order.EcoFeeTotal,
		PointsEarned: totals.PointsEarned,
	}, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*model.OrderDetail, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderDetail{Order: *order, Items: items}, nil
}
