package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPResponse is the json envelope shared by every endpoint.
type HTTPResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// sentinelStatus maps bare sentinel errors to HTTP statuses so that services
// and repositories can return them without wrapping.
var sentinelStatus = map[error]int{
	apperrors.ErrNotFound:             http.StatusNotFound,
	apperrors.ErrBadRequest:           http.StatusBadRequest,
	apperrors.ErrConflict:             http.StatusConflict,
	apperrors.ErrForbidden:            http.StatusForbidden,
	apperrors.ErrUnauthorized:         http.StatusUnauthorized,
	apperrors.ErrInvalidCredentials:   http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:      http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:    http.StatusUnauthorized,
	apperrors.ErrInvalidToken:         http.StatusUnauthorized,
	apperrors.ErrTokenExpired:         http.StatusUnauthorized,
	apperrors.ErrTokenNotYetValid:     http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:    http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:     http.StatusUnauthorized,
	apperrors.ErrInvalidSigningMethod: http.StatusUnauthorized,
}

func SuccessResponse(ctx echo.Context, data interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		resp := &HTTPResponse{Success: false, Message: httpErr.Message}
		if httpErr.Details != nil {
			resp.Data = httpErr.Details
		}
		return c.JSON(httpErr.Code, resp)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on rule '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{
			Success: false,
			Message: "validation failed",
			Error:   strings.Join(msgs, "; "),
		})
	}

	for sentinel, code := range sentinelStatus {
		if errors.Is(err, sentinel) {
			return c.JSON(code, &HTTPResponse{Success: false, Message: sentinel.Error()})
		}
	}

	logger.Error("unexpected error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, &HTTPResponse{
		Success: false,
		Message: "internal server error",
	})
}
