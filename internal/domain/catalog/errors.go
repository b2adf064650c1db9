package catalog

import "errors"

var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidPrice      = errors.New("price cannot be negative")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrEmptyImageURL     = errors.New("image url cannot be empty")
	ErrMasterNotBookable = errors.New("master is not available for booking")
)
