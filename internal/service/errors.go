package service

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses:
// ErrValidation -> 400, ErrInvalidCredentials -> 401, ErrAccountSuspended
// and ErrForbidden -> 403, ErrNotFound -> 404, ErrUserAlreadyExists -> 409.
// Credential failures (unknown identifier, wrong password) share a single
// error so callers cannot enumerate which identifiers exist.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUserAlreadyExists  = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrForbidden          = errors.New("forbidden: user does not have permission for this action")
	ErrNotFound           = errors.New("resource not found")
)
