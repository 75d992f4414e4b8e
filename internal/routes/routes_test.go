package routes

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"gearguard/pkg/config"
	"gearguard/pkg/service"
)

func buildTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	jwtSvc := service.NewJWTService("routing-test-secret", time.Hour, time.Hour, zap.NewNop())
	cfg := &config.Config{
		Auth: config.AuthConfig{MaxLoginAttempts: 5, LockoutDuration: 15 * time.Minute},
	}

	// Repositories never execute a query here, so nil pools are fine.
	InitRouter(e, nil, nil, jwtSvc, zap.NewNop(), cfg)
	return e
}

func TestRegisteredRoutes(t *testing.T) {
	e := buildTestRouter(t)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/refresh_token",
		http.MethodPost + " /api/auth/logout",
		http.MethodGet + " /api/auth/me",
		http.MethodGet + " /api/equipment",
		http.MethodPost + " /api/equipment",
		http.MethodPost + " /api/equipment/import",
		http.MethodGet + " /api/equipment/:id",
		http.MethodPut + " /api/equipment/:id",
		http.MethodDelete + " /api/equipment/:id",
		http.MethodGet + " /api/teams",
		http.MethodPost + " /api/teams",
		http.MethodGet + " /api/teams/:id",
		http.MethodPut + " /api/teams/:id",
		http.MethodDelete + " /api/teams/:id",
		http.MethodGet + " /api/requests",
		http.MethodPost + " /api/requests",
		http.MethodGet + " /api/requests/:id",
		http.MethodPut + " /api/requests/:id",
		http.MethodPatch + " /api/requests/:id",
		http.MethodPut + " /api/requests/:id/assign",
		http.MethodDelete + " /api/requests/:id",
		http.MethodGet + " /api/dashboard/stats",
		http.MethodGet + " /api/dashboard/activity",
	}

	for _, route := range expected {
		assert.True(t, registered[route], fmt.Sprintf("route %s is not registered", route))
	}
}

// Clients updating a request use PUT; PATCH stays as an alias for
// partial updates.
func TestRequestUpdateAcceptsPutAndPatch(t *testing.T) {
	e := buildTestRouter(t)

	found := make(map[string]bool)
	for _, r := range e.Routes() {
		if r.Path == "/api/requests/:id" {
			found[r.Method] = true
		}
	}

	assert.True(t, found[http.MethodPut])
	assert.True(t, found[http.MethodPatch])
}
