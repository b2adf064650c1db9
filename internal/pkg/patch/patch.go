package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps the current optional value unless the patch sets one.
// An explicit clear is expressed by the caller, not here.
func CoalescePtr[T any](ptr *T, current *T) *T {
	if ptr != nil {
		return ptr
	}
	return current
}
