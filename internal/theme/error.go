package theme

import "errors"

var ErrInvalidMode = errors.New("theme mode must be light or dark")
