package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("inactive account")
	ErrEmailTaken         = errors.New("email already taken")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrInvalidToken       = errors.New("invalid token")
)

// FieldErrors carries per-field validation messages to the request boundary.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(f))
}

func (f FieldErrors) Is(target error) bool {
	return target == ErrInvalidArgument
}
