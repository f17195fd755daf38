package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"ecoeats/internal/model"
	"ecoeats/internal/repository"
)

type userService struct {
	userRepo   repository.UserRepository
	orderRepo  repository.OrderRepository
	pointsRepo repository.PointsRepository
	logger     zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	pointsRepo repository.PointsRepository,
	logger zerolog.Logger,
) UserService {
	return &userService{
		userRepo:   userRepo,
		orderRepo:  orderRepo,
		pointsRepo: pointsRepo,
		logger:     logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) GetOrCreate(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByExternalID(ctx, req.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.Create(ctx, req.ExternalID, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Int64("external_id", user.ExternalID).
		Msg("user registered")

	return user, nil
}

func (s *userService) Get(ctx context.Context, externalID int64) (*model.User, error) {
	user, err := s.userRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	return user, nil
}

func (s *userService) Stats(ctx context.Context, externalID int64) (*model.UserStats, error) {
	user, err := s.userRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	totalOrders, err := s.orderRepo.CountForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	return &model.UserStats{
		EcoPoints:   user.EcoPoints,
		OrdersCount: user.OrdersCount,
		TotalOrders: totalOrders,
	}, nil
}

func (s *userService) AddPoints(ctx context.Context, externalID int64, req *model.AddPointsRequest) (*model.BalanceResponse, error) {
	if req.Amount == 0 {
		return nil, model.ErrInvalidAmount
	}

	reason := req.Reason
	if reason == "" {
		reason = model.PointsReasonContainerReturn
	}

	tx, err := s.userRepo.BeginTx(ctx)
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

	user, err := s.userRepo.LockByExternalID(ctx, tx, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	if user == nil {
		err = model.ErrUserNotFound
		return nil, err
	}

	entry := &model.PointsEntry{
		UserID: user.ID,
		Amount: req.Amount,
		Reason: reason,
	}

	if err = s.pointsRepo.AppendEntry(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to append points entry: %w", err)
	}

	balance, err := s.userRepo.AdjustPoints(ctx, tx, user.ID, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust points balance: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Int64("amount", req.Amount).
		Str("reason", reason).
		Int64("balance", balance).
		Msg("points adjusted")

	return &model.BalanceResponse{Balance: balance}, nil
}
