package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by services, handlers and the client. Handlers map
// these to HTTP statuses; anything else is treated as a store failure (500).
var (
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("username already taken")
	ErrBadCredentials = errors.New("invalid username or password")
	ErrTokenMissing   = errors.New("authorization token missing")
	ErrTokenInvalid   = errors.New("invalid or expired token")
	ErrNotFound       = errors.New("task not found")
)

// Validationf wraps ErrValidation with a caller-facing message, so
// errors.Is(err, ErrValidation) still holds.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
