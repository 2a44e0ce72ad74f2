package menu

import "errors"

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrInvalidPrice = errors.New("price must not be negative")
	ErrNameRequired = errors.New("menu name is required")
)
