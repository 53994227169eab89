package orders

import "errors"

var (
	ErrNotFound         = errors.New("order not found")
	ErrNoItems          = errors.New("order has no items")
	ErrAlreadyFinalized = errors.New("order already finalized")
	ErrNotFinalized     = errors.New("order not finalized")
	ErrItemOutOfRange   = errors.New("item index out of range")
)
