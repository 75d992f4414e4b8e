package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/authz"
	"gearguard/internal/controllers"
)

func runEquipmentRouter(secure *echo.Group, ctrl *controllers.EquipmentController, gate *authz.Gatekeeper) {
	secure.GET("/equipment", ctrl.GetEquipment, gate.Require(authz.ResourceEquipment, authz.ActionList))
	secure.GET("/equipment/:id", ctrl.FindEquipment, gate.Require(authz.ResourceEquipment, authz.ActionRead))
	secure.POST("/equipment", ctrl.CreateEquipment, gate.Require(authz.ResourceEquipment, authz.ActionCreate))
	secure.PUT("/equipment/:id", ctrl.UpdateEquipment, gate.Require(authz.ResourceEquipment, authz.ActionUpdate))
	secure.DELETE("/equipment/:id", ctrl.DeleteEquipment, gate.Require(authz.ResourceEquipment, authz.ActionDelete))
	secure.POST("/equipment/import", ctrl.ImportEquipment, gate.Require(authz.ResourceEquipment, authz.ActionImport))
}
