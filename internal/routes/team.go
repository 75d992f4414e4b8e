package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/authz"
	"gearguard/internal/controllers"
)

func runTeamRouter(secure *echo.Group, ctrl *controllers.TeamController, gate *authz.Gatekeeper) {
	secure.GET("/teams", ctrl.GetTeams, gate.Require(authz.ResourceTeams, authz.ActionList))
	secure.GET("/teams/:id", ctrl.FindTeam, gate.Require(authz.ResourceTeams, authz.ActionRead))
	secure.POST("/teams", ctrl.CreateTeam, gate.Require(authz.ResourceTeams, authz.ActionCreate))
	secure.PUT("/teams/:id", ctrl.UpdateTeam, gate.Require(authz.ResourceTeams, authz.ActionUpdate))
	secure.DELETE("/teams/:id", ctrl.DeleteTeam, gate.Require(authz.ResourceTeams, authz.ActionDelete))
}
