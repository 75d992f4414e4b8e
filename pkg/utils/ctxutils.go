package utils

import (
	"context"

	"gearguard/internal/entities"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
)

// GetAuthUserFromCtx returns the identity attached by the auth middleware.
func GetAuthUserFromCtx(ctx context.Context) (*entities.User, error) {
	user, ok := ctx.Value(contextkeys.AuthUserKey).(*entities.User)
	if !ok || user == nil {
		return nil, apperrors.ErrUserNotFoundInContext
	}
	return user, nil
}

// WithAuthUser attaches the resolved identity to a context. Used by the auth
// middleware and by tests.
func WithAuthUser(ctx context.Context, user *entities.User) context.Context {
	return context.WithValue(ctx, contextkeys.AuthUserKey, user)
}
