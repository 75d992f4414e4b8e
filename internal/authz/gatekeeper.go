package authz

import (
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Gatekeeper turns policy-table decisions into route middleware.
type Gatekeeper struct {
	logger *zap.Logger
}

func NewGatekeeper(logger *zap.Logger) *Gatekeeper {
	return &Gatekeeper{logger: logger}
}

// Require rejects the call with 403 unless the authenticated role is allowed
// to perform the action on the resource. It must run after the auth
// middleware.
func (g *Gatekeeper) Require(resource Resource, action Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := utils.GetAuthUserFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, g.logger)
			}

			if !Allowed(actor.Role, resource, action) {
				g.logger.Warn("role not permitted",
					zap.String("role", string(actor.Role)),
					zap.String("resource", string(resource)),
					zap.String("action", string(action)),
				)
				return utils.ErrorResponse(c, apperrors.NewForbiddenError(
					"role '"+string(actor.Role)+"' is not authorized for this action"), g.logger)
			}

			return next(c)
		}
	}
}
