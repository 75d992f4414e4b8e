package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	res, err := c.requestService.GetRequests(ctx.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request list", http.StatusOK)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.FindRequest(ctx.Request().Context(), actor, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request found", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.CreateRequest(ctx.Request().Context(), actor, payload)
	if err != nil {
		c.logger.Error("CreateRequest failed", zap.Uint64("user_id", actor.ID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request created", http.StatusCreated)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequest(ctx.Request().Context(), actor, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request updated", http.StatusOK)
}

func (c *RequestController) AssignRequest(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AssignRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.AssignRequest(ctx.Request().Context(), actor, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "request assigned", http.StatusOK)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.requestService.DeleteRequest(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "request deleted", http.StatusOK)
}
