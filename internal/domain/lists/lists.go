// Package lists defines the domain-list model shared by every storage
// backend: the closed set of list kinds and the errors the repository
// contract surfaces.
package lists

import "fmt"

// List identifies one of the three independent domain lists. It is only
// ever used as a selector; it is never persisted as data.
type List string

const (
	// ListAllow holds domains that are exempt from blocking.
	ListAllow List = "allow"
	// ListDeny holds domains that are always blocked.
	ListDeny List = "deny"
	// ListRegex holds regular-expression patterns matched against queried
	// domains by the resolver.
	ListRegex List = "regex"
)

// All returns every known list kind, in a fixed order.
func All() []List {
	return []List{ListAllow, ListDeny, ListRegex}
}

// Valid reports whether l is one of the known list kinds.
func (l List) Valid() bool {
	switch l {
	case ListAllow, ListDeny, ListRegex:
		return true
	}
	return false
}

func (l List) String() string {
	return string(l)
}

// Parse converts a user-supplied list name into a List.
func Parse(s string) (List, error) {
	l := List(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownList, s)
	}
	return l, nil
}
