package settings

import "errors"

var (
	ErrInvalidKey   = errors.New("invalid settings key")
	ErrInvalidValue = errors.New("invalid settings value")
)
