package cart

import "errors"

var (
	ErrNoCartKey = errors.New("no cart identity: login or send X-Device-ID")
	ErrCartEmpty = errors.New("cart is empty")
)
