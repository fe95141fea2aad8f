package lists

import "errors"

var (
	// ErrUnknownList is returned when a list selector is not one of the
	// known kinds.
	ErrUnknownList = errors.New("unknown list")

	// ErrStorage is the single error kind covering every storage-layer
	// failure: lost connections, rejected queries, failed commits. Callers
	// only need to know the operation failed; the underlying cause is
	// logged by the backend, not propagated.
	ErrStorage = errors.New("list storage failure")
)
