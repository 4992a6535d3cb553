package service

import "errors"

// Terminal error vocabulary. Handlers translate these into fixed response
// codes; anything outside this set is reported as an internal failure and
// only logged server-side.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrCapacityExceeded   = errors.New("insufficient capacity")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
