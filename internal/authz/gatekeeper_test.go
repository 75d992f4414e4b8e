package authz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/pkg/utils"
)

func performGated(t *testing.T, actor *entities.User, resource Resource, action Action) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if actor != nil {
		req = req.WithContext(utils.WithAuthUser(req.Context(), actor))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	gate := NewGatekeeper(zap.NewNop())
	handler := gate.Require(resource, action)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestGatekeeperAllows(t *testing.T) {
	rec := performGated(t, &entities.User{ID: 1, Role: entities.RoleAdmin}, ResourceEquipment, ActionCreate)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGatekeeperForbids(t *testing.T) {
	rec := performGated(t, &entities.User{ID: 2, Role: entities.RoleUser}, ResourceEquipment, ActionCreate)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestGatekeeperRejectsAnonymous(t *testing.T) {
	rec := performGated(t, nil, ResourceEquipment, ActionList)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
