package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetStats(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	res, err := c.dashboardService.GetStats(ctx.Request().Context(), actor)
	if err != nil {
		c.logger.Error("GetStats failed", zap.Uint64("user_id", actor.ID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "dashboard stats", http.StatusOK)
}

func (c *DashboardController) GetRecentActivity(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	res, err := c.dashboardService.GetRecentActivity(ctx.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "recent activity", http.StatusOK)
}
