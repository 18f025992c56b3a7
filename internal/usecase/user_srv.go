package usecase

import (
	"context"
	"fmt"
	"time"

	"nocturne/internal/data/entity"
	"nocturne/internal/data/repository"
	"nocturne/internal/dto/request"
	"nocturne/internal/dto/response"
	"nocturne/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error)
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user := &entity.UserProfile{
		ID:        uuid.New(),
		Name:      req.Name,
		Phone:     req.Phone,
		Instagram: req.Instagram,
		// The prototype's single admin switch: the name "Admin" unlocks
		// the analytics dashboard. No further auth by design scope.
		IsAdmin:       req.Name == "Admin",
		LoyaltyTier:   entity.TierGold,
		LoyaltyPoints: 12500,
		CreatedAt:     time.Now(),
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		us.log.Error("Failed to create user", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("register user: %w", err)
	}

	us.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("name", user.Name),
		zap.Bool("is_admin", user.IsAdmin),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
