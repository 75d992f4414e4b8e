package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type stubUserFinder struct {
	users map[uint64]*entities.User
}

func (s *stubUserFinder) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func newAuthFixture() (*AuthMiddleware, service.JWTService) {
	jwtSvc := service.NewJWTService("middleware-test-secret", time.Hour, time.Hour*24, zap.NewNop())
	finder := &stubUserFinder{users: map[uint64]*entities.User{
		1: {ID: 1, Email: "admin@gearguard.com", Role: entities.RoleAdmin},
	}}
	return NewAuthMiddleware(jwtSvc, finder, zap.NewNop()), jwtSvc
}

func performAuth(t *testing.T, mw *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, *entities.User) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entities.User
	handler := mw.Auth(func(c echo.Context) error {
		user, err := utils.GetAuthUserFromCtx(c.Request().Context())
		require.NoError(t, err)
		seen = user
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, seen
}

func TestAuthAcceptsValidToken(t *testing.T) {
	mw, jwtSvc := newAuthFixture()

	access, _, err := jwtSvc.GenerateTokens(1)
	require.NoError(t, err)

	rec, seen := performAuth(t, mw, "Bearer "+access)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, uint64(1), seen.ID)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	mw, _ := newAuthFixture()

	rec, _ := performAuth(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	mw, _ := newAuthFixture()

	rec, _ := performAuth(t, mw, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsRefreshToken(t *testing.T) {
	mw, jwtSvc := newAuthFixture()

	_, refresh, err := jwtSvc.GenerateTokens(1)
	require.NoError(t, err)

	rec, _ := performAuth(t, mw, "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsUnknownSubject(t *testing.T) {
	mw, jwtSvc := newAuthFixture()

	access, _, err := jwtSvc.GenerateTokens(99)
	require.NoError(t, err)

	rec, _ := performAuth(t, mw, "Bearer "+access)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
