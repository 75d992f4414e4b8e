package middleware

import (
	"context"
	"errors"
	"strings"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserFinder resolves the token subject to a live user record.
type UserFinder interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	users      UserFinder
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, users UserFinder, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		users:      users,
		logger:     logger,
	}
}

// Auth verifies the bearer credential, resolves it to a user record and
// attaches the identity to the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("empty Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("malformed Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("refresh token used for access")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		user, err := m.users.FindUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				m.logger.Warn("token subject no longer exists", zap.Uint64("userID", claims.UserID))
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			return utils.ErrorResponse(c, err, m.logger)
		}

		newCtx := utils.WithAuthUser(c.Request().Context(), user)
		c.SetRequest(c.Request().WithContext(newCtx))

		return next(c)
	}
}
