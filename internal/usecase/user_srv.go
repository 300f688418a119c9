package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error)
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

func (us *userService) GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := us.userRepo.GetByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	// a valid token for a deleted account
	if user == nil {
		return nil, notFound("User", userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
