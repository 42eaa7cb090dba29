package favorite

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// PgUniqueViolation is the Postgres error code for unique constraint violations.
const PgUniqueViolation = "23505"
