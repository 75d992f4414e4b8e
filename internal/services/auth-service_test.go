package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

func newAuthFixture(t *testing.T) (AuthServiceInterface, *fakeUserRepo, *fakeCacheRepo) {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)

	userRepo := newFakeUserRepo(&entities.User{
		ID:       1,
		Name:     "Admin User",
		Email:    "admin@gearguard.com",
		Password: hashed,
		Role:     entities.RoleAdmin,
	})
	cacheRepo := newFakeCacheRepo()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, time.Hour*24, zap.NewNop())

	authCfg := config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute * 15}
	return NewAuthService(userRepo, cacheRepo, jwtSvc, authCfg, zap.NewNop()), userRepo, cacheRepo
}

func TestLoginSuccess(t *testing.T) {
	svc, _, cacheRepo := newAuthFixture(t)

	res, refreshToken, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@gearguard.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, "admin@gearguard.com", res.User.Email)
	assert.Empty(t, cacheRepo.counters)
}

func TestLoginWrongPasswordCountsAttempt(t *testing.T) {
	svc, _, cacheRepo := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@gearguard.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, int64(1), cacheRepo.counters["login_attempts:admin@gearguard.com"])
	assert.Equal(t, time.Minute*15, cacheRepo.ttls["login_attempts:admin@gearguard.com"])
}

func TestLoginUnknownEmailCountsAttempt(t *testing.T) {
	svc, _, cacheRepo := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "nobody@gearguard.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, int64(1), cacheRepo.counters["login_attempts:nobody@gearguard.com"])
}

func TestLoginLockout(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	for i := 0; i < 3; i++ {
		_, _, err := svc.Login(context.Background(), dto.LoginDTO{
			Email:    "admin@gearguard.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Even the correct password is rejected while locked out.
	_, _, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@gearguard.com",
		Password: "password123",
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)

	details, ok := httpErr.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64((time.Minute*15).Seconds()), details["retry_after_seconds"])
}

func TestLoginSuccessResetsCounter(t *testing.T) {
	svc, _, cacheRepo := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@gearguard.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@gearguard.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Empty(t, cacheRepo.counters)
}

func TestRegisterAssignsUserRole(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)

	res, refreshToken, err := svc.Register(context.Background(), dto.RegisterDTO{
		Name:     "New Person",
		Email:    "new@gearguard.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.RoleUser, res.User.Role)
	assert.NotEmpty(t, refreshToken)

	stored, err := userRepo.FindUserByEmail(context.Background(), "new@gearguard.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Register(context.Background(), dto.RegisterDTO{
		Name:     "Copycat",
		Email:    "admin@gearguard.com",
		Password: "secret123",
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	res, _, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@gearguard.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = svc.Refresh(context.Background(), res.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestRefreshIssuesNewTokens(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, refreshToken, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@gearguard.com",
		Password: "password123",
	})
	require.NoError(t, err)

	res, newRefreshToken, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, newRefreshToken)
	assert.Equal(t, uint64(1), res.User.ID)
}
