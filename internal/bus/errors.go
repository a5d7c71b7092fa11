package bus

import "errors"

var (
	ErrClosed = errors.New("bus is closed")
	ErrNoData = errors.New("event carries no data")
)
