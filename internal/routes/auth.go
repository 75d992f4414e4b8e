package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runAuthRouter(api *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/register", ctrl.Register)
	api.POST("/auth/refresh_token", ctrl.Refresh)
	api.POST("/auth/logout", ctrl.Logout)

	secure.GET("/auth/me", ctrl.Me)
}
