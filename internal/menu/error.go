package menu

import "errors"

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrItemNotFound = errors.New("menu item not found")
	ErrMissingName  = errors.New("item name is required")
	ErrInvalidPrice = errors.New("item price must not be negative")
	ErrForbidden    = errors.New("not allowed to manage this menu")
)
