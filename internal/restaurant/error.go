package restaurant

import "errors"

var (
	ErrNotFound  = errors.New("restaurant not found")
	ErrForbidden = errors.New("not allowed to manage this restaurant")
)
