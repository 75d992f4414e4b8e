package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, string, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.AuthResponseDTO, string, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, string, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	authConfig config.AuthConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		authConfig: authConfig,
		logger:     logger,
	}
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, string, error) {
	key := loginAttemptsKey(payload.Email)

	attempts, err := s.cacheRepo.GetInt(ctx, key)
	if err != nil {
		// Redis being down must not lock everyone out.
		s.logger.Warn("login attempt counter unavailable", zap.Error(err))
	} else if attempts >= int64(s.authConfig.MaxLoginAttempts) {
		httpErr := apperrors.NewHttpError(
			http.StatusTooManyRequests,
			"too many failed login attempts, try again later",
			nil,
			map[string]interface{}{"email": payload.Email},
		)
		if ttl, err := s.cacheRepo.TTL(ctx, key); err == nil && ttl > 0 {
			httpErr.Details = map[string]interface{}{"retry_after_seconds": int64(ttl.Seconds())}
		}
		return nil, "", httpErr
	}

	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.registerFailedAttempt(ctx, key)
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.registerFailedAttempt(ctx, key)
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := s.cacheRepo.Del(ctx, key); err != nil {
		s.logger.Warn("failed to reset login attempt counter", zap.Error(err))
	}

	return s.issueTokens(user)
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, key string) {
	n, err := s.cacheRepo.Incr(ctx, key)
	if err != nil {
		s.logger.Warn("failed to record login attempt", zap.Error(err))
		return
	}
	if n == 1 {
		if err := s.cacheRepo.Expire(ctx, key, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("failed to set lockout window", zap.Error(err))
		}
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.AuthResponseDTO, string, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashed,
		Role:     entities.RoleUser,
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, "", apperrors.NewConflictError("email is already registered")
		}
		return nil, "", err
	}

	return s.issueTokens(created)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, "", err
	}
	if !claims.IsRefreshToken {
		return nil, "", apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", err
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entities.User) (*dto.AuthResponseDTO, string, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, "", err
	}

	return &dto.AuthResponseDTO{AccessToken: accessToken, User: user}, refreshToken, nil
}
