package truck

import "errors"

var (
	ErrTruckNotFound      = errors.New("truck not found")
	ErrTruckUnavailable   = errors.New("truck not available")
	ErrCapacityExceeded   = errors.New("cargo exceeds truck capacity")
	ErrPlateAlreadyExists = errors.New("plate number already registered")
)
