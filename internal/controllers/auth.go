package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

const refreshCookieName = "refresh_token"

type AuthController struct {
	authService services.AuthServiceInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, refreshToken, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.setRefreshCookie(ctx, refreshToken)
	return utils.SuccessResponse(ctx, res, "login successful", http.StatusOK)
}

func (c *AuthController) Register(ctx echo.Context) error {
	var payload dto.RegisterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, refreshToken, err := c.authService.Register(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.setRefreshCookie(ctx, refreshToken)
	return utils.SuccessResponse(ctx, res, "registration successful", http.StatusCreated)
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	cookie, err := ctx.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	res, refreshToken, err := c.authService.Refresh(ctx.Request().Context(), cookie.Value)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.setRefreshCookie(ctx, refreshToken)
	return utils.SuccessResponse(ctx, res, "token refreshed", http.StatusOK)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/auth",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return utils.SuccessResponse(ctx, nil, "logged out", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	user, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "authenticated user", http.StatusOK)
}

func (c *AuthController) setRefreshCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/api/auth",
		Expires:  time.Now().Add(c.jwtService.GetRefreshTokenTTL()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
