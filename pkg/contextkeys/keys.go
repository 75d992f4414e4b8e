package contextkeys

type contextKey string

const (
	// AuthUserKey holds the *entities.User resolved by the auth middleware.
	AuthUserKey contextKey = "AuthUser"
)
