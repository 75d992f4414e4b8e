package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "gearguard/pkg/errors"
)

// parseIDParam reads a numeric :id path parameter.
func parseIDParam(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"invalid id parameter",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
