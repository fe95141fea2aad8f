package repository

import (
	"context"

	"github.com/bnema/sinkhole/internal/domain/lists"
)

//go:generate mockgen -source=lists.go -destination=mocks/mock_lists.go -package=mocks

// ListRepository defines operations for domain-list persistence. It is the
// only contract through which callers query or mutate blocklist state; the
// backing store is an implementation detail chosen at composition time.
//
// Implementations must be safe for concurrent use. Every method may block
// on I/O; cancellation and deadlines travel on ctx. Storage failures are
// reported as lists.ErrStorage and never as partial results.
type ListRepository interface {
	// GetAll retrieves all enabled values on the given list.
	GetAll(ctx context.Context, list lists.List) ([]string, error)

	// Contains checks if the given list holds an enabled entry exactly
	// matching domain. The domain is not validated for well-formedness
	// here; that is the caller's job.
	Contains(ctx context.Context, list lists.List, domain string) (bool, error)

	// Add inserts domain into the given list as enabled. Adding a value
	// that is already present is not an error.
	Add(ctx context.Context, list lists.List, domain string) error

	// Remove takes domain off the given list. Removing an absent value is
	// a no-op, not an error: the observable state is already satisfied.
	Remove(ctx context.Context, list lists.List, domain string) error
}
