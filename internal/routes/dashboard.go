package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/authz"
	"gearguard/internal/controllers"
)

func runDashboardRouter(secure *echo.Group, ctrl *controllers.DashboardController, gate *authz.Gatekeeper) {
	secure.GET("/dashboard/stats", ctrl.GetStats, gate.Require(authz.ResourceDashboard, authz.ActionRead))
	secure.GET("/dashboard/activity", ctrl.GetRecentActivity, gate.Require(authz.ResourceDashboard, authz.ActionRead))
}
