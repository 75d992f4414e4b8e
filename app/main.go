package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"gearguard/internal/routes"
	"gearguard/migrations"
	"gearguard/pkg/config"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/database/postgresql"
	apperrors "gearguard/pkg/errors"
	applogger "gearguard/pkg/logger"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

func main() {
	e := echo.New()
	e.HideBanner = true

	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	// Credentialed CORS requires named origins, a wildcard is rejected by
	// browsers.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validation rules", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	runMigrations(cfg.Postgres.DSN, logger)

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	e.GET("/", func(c echo.Context) error {
		return utils.SuccessResponse(c, map[string]string{"service": "gearguard"}, "maintenance tracker api", http.StatusOK)
	})
	e.GET("/api/health", func(c echo.Context) error {
		return utils.SuccessResponse(c, map[string]string{"status": "ok"}, "healthy", http.StatusOK)
	})

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, logger, cfg)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// runMigrations applies the embedded goose migrations over a throwaway
// database/sql connection.
func runMigrations(dsn string, logger *zap.Logger) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Fatal("failed to open migration connection", zap.Error(err))
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal("failed to set migration dialect", zap.Error(err))
	}
	if err := goose.Up(db, "."); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}
}
