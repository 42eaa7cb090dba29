package user

import "errors"

var (
	// -- Registration --
	ErrEmailExists   = errors.New("email already registered")
	ErrInvalidRole   = errors.New("invalid role")
	ErrMissingFields = errors.New("email, password and name are required")

	// -- Authentication --
	// One error for unknown email and wrong password so a caller cannot
	// probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleMismatch       = errors.New("invalid role for this user")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// -- Lookup --
	ErrUserNotFound = errors.New("user not found")
)

// PgUniqueViolation is the Postgres error code for unique constraint violations.
const PgUniqueViolation = "23505"
