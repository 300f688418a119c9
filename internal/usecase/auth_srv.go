package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

// TokenIssuer signs a bearer token for an authenticated user.
type TokenIssuer interface {
	Issue(userID int64, username string) (string, time.Time, error)
}

type authService struct {
	repo   *repository.Repository
	hasher utils.PasswordHasher
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	hasher utils.PasswordHasher,
	tokens TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Username must be free
	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		s.log.Warn("Username already taken", zap.String("username", req.Username))
		return nil, newError(ErrConflict, "Username '%s' is already taken", req.Username)
	}

	// 2. Email must be free
	existing, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		s.log.Warn("Email already registered", zap.String("email", req.Email))
		return nil, newError(ErrConflict, "Email '%s' is already registered", req.Email)
	}

	// 3. Hash with a fresh salt
	hash, salt, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entity.NewUser()
	user.Username = req.Username
	user.Email = req.Email
	user.PasswordHash = hash
	user.PasswordSalt = salt

	// 4. Save, treating a lost race on the unique columns as a conflict
	if _, err := s.repo.User.Add(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, newError(ErrConflict, "Username or email is already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, newError(ErrUnauthorized, "Invalid username or password")
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash, user.PasswordSalt) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, newError(ErrUnauthorized, "Invalid username or password")
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return s.issue(user)
}

func (s *authService) issue(user *entity.User) (*response.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &response.AuthResponse{
		Token:     token,
		Username:  user.Username,
		ExpiresAt: expiresAt,
	}, nil
}
