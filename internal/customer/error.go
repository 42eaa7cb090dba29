package customer

import "errors"

var (
	ErrNotFound      = errors.New("customer not found")
	ErrInvalidPoints = errors.New("loyalty points increment must be positive")
)
