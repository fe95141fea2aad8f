// Package memory provides an in-memory domain-list repository. It exists
// for tests and for running the API without a gravity database; it is never
// a second source of truth next to the SQLite backend.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/sinkhole/internal/domain/lists"
	"github.com/bnema/sinkhole/internal/domain/repository"
)

type listRepo struct {
	mu sync.RWMutex
	// Per-list insertion-ordered entries, so GetAll is deterministic.
	entries map[lists.List][]string
}

// NewListRepository creates an empty in-memory domain-list repository.
func NewListRepository() repository.ListRepository {
	entries := make(map[lists.List][]string, len(lists.All()))
	for _, list := range lists.All() {
		entries[list] = []string{}
	}
	return &listRepo{entries: entries}
}

func (r *listRepo) lookup(list lists.List) ([]string, error) {
	values, ok := r.entries[list]
	if !ok {
		return nil, lists.ErrUnknownList
	}
	return values, nil
}

func (r *listRepo) GetAll(_ context.Context, list lists.List) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values, err := r.lookup(list)
	if err != nil {
		return nil, err
	}
	return slices.Clone(values), nil
}

func (r *listRepo) Contains(_ context.Context, list lists.List, domain string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values, err := r.lookup(list)
	if err != nil {
		return false, err
	}
	return slices.Contains(values, domain), nil
}

func (r *listRepo) Add(_ context.Context, list lists.List, domain string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.lookup(list)
	if err != nil {
		return err
	}
	if slices.Contains(values, domain) {
		return nil
	}
	r.entries[list] = append(values, domain)
	return nil
}

func (r *listRepo) Remove(_ context.Context, list lists.List, domain string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.lookup(list)
	if err != nil {
		return err
	}
	if i := slices.Index(values, domain); i >= 0 {
		r.entries[list] = slices.Delete(values, i, i+1)
	}
	return nil
}
