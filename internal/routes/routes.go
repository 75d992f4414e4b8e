package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// InitRouter builds the full dependency graph and mounts every route
// group under /api.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	// repositories
	userRepo := repositories.NewUserRepository(dbConn, logger)
	teamRepo := repositories.NewTeamRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)
	cacheRepo := repositories.NewCacheRepository(redisClient, logger)

	// services
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Auth, logger)
	teamService := services.NewTeamService(teamRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, teamRepo, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, userRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logger)

	// controllers
	authController := controllers.NewAuthController(authService, jwtSvc, logger)
	teamController := controllers.NewTeamController(teamService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	requestController := controllers.NewRequestController(requestService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, userRepo, logger)
	gate := authz.NewGatekeeper(logger)

	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, secure, authController)
	runEquipmentRouter(secure, equipmentController, gate)
	runTeamRouter(secure, teamController, gate)
	runRequestRouter(secure, requestController, gate)
	runDashboardRouter(secure, dashboardController, gate)
}
