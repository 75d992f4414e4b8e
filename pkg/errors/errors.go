package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("unexpected token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("refresh token cannot be used for access")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("malformed authorization header")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrForbidden          = fmt.Errorf("forbidden")

	// Context
	ErrUserNotFoundInContext = fmt.Errorf("authenticated user not found in request context")

	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
	ErrConflict   = fmt.Errorf("record already exists")
)

// HttpError carries an HTTP status, a public message and the wrapped cause.
// Context is only logged, Details is serialized into the response body.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *HttpError {
	return &HttpError{Code: http.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *HttpError {
	return &HttpError{Code: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: message}
}
