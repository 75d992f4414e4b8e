package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/authz"
	"gearguard/internal/controllers"
)

func runRequestRouter(secure *echo.Group, ctrl *controllers.RequestController, gate *authz.Gatekeeper) {
	secure.GET("/requests", ctrl.GetRequests, gate.Require(authz.ResourceRequests, authz.ActionList))
	secure.GET("/requests/:id", ctrl.FindRequest, gate.Require(authz.ResourceRequests, authz.ActionRead))
	secure.POST("/requests", ctrl.CreateRequest, gate.Require(authz.ResourceRequests, authz.ActionCreate))
	secure.PUT("/requests/:id", ctrl.UpdateRequest, gate.Require(authz.ResourceRequests, authz.ActionUpdate))
	secure.PATCH("/requests/:id", ctrl.UpdateRequest, gate.Require(authz.ResourceRequests, authz.ActionUpdate))
	secure.PUT("/requests/:id/assign", ctrl.AssignRequest, gate.Require(authz.ResourceRequests, authz.ActionAssign))
	secure.DELETE("/requests/:id", ctrl.DeleteRequest, gate.Require(authz.ResourceRequests, authz.ActionDelete))
}
