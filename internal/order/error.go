package order

import "errors"

var (
	// -- Lookup --
	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// -- Validation & Input --
	ErrNoItems         = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be at least one")
	ErrInvalidPrice    = errors.New("item price must not be negative")
	ErrInvalidTotal    = errors.New("order total must not be negative")
	ErrInvalidStatus   = errors.New("unknown order status")

	// -- State machine --
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrInvalidState      = errors.New("order cannot be cancelled in its current status")

	// -- Ownership --
	ErrForbidden = errors.New("not allowed to manage this order")
)
