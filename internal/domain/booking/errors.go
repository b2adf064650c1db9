package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrTerminalStatus    = errors.New("booking is already completed or cancelled")
	ErrIllegalTransition = errors.New("status transition is not allowed")

	ErrServiceRequired  = errors.New("service is required")
	ErrInvalidPrice     = errors.New("price cannot be negative")
	ErrInvalidTotal     = errors.New("total price must be between 0 and price")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrStartRequired    = errors.New("booking time is required")
	ErrCommentTooLong   = errors.New("comment exceeds maximum length")
	ErrInvalidDateLabel = errors.New("invalid date label")
	ErrInvalidTimeLabel = errors.New("invalid time label")
)
