package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthorized     = errors.New("login required")
	ErrEventDateMissing = errors.New("event date is required")
	ErrCustomerRequired = errors.New("customer name, phone and address are required")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidPayment   = errors.New("invalid payment status")
)
