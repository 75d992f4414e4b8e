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

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	res, err := c.equipmentService.GetEquipment(ctx.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment list", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	actor, err := utils.GetAuthUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), actor, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment found", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateEquipment failed", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment created", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment updated", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "equipment deleted", http.StatusOK)
}

// ImportEquipment accepts a multipart upload with the workbook under the
// "file" field.
func (c *EquipmentController) ImportEquipment(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewBadRequestError("multipart field 'file' is required"),
			c.logger)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "failed to open uploaded file", err, nil),
			c.logger)
	}
	defer file.Close()

	report, err := c.equipmentService.ImportEquipment(ctx.Request().Context(), file)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "import finished", http.StatusOK)
}
