package errs

// Category markers shared across layers. Use cases mark their sentinels with one of these
// so handlers can pick an HTTP status without knowing every sentinel.
var (
	ErrNotFound   = New("not found")
	ErrValidation = New("validation failed")
	ErrConflict   = New("conflict")
	ErrForbidden  = New("forbidden")
)

// NewNotFound, NewValidation, NewConflict and NewForbidden create a sentinel carrying a category mark.
func NewNotFound(msg string) error   { return Mark(New(msg), ErrNotFound) }
func NewValidation(msg string) error { return Mark(New(msg), ErrValidation) }
func NewConflict(msg string) error   { return Mark(New(msg), ErrConflict) }
func NewForbidden(msg string) error  { return Mark(New(msg), ErrForbidden) }
