package resolver

import "context"

// StaticStats is a StatsReader returning fixed values. It stands in for the
// real resolver in tests and when the API runs without one.
type StaticStats struct {
	Stats Summary
	Top   []TopDomain
}

func (s *StaticStats) Summary(_ context.Context) (Summary, error) {
	return s.Stats, nil
}

func (s *StaticStats) TopDomains(_ context.Context, n int) ([]TopDomain, error) {
	if n > len(s.Top) {
		n = len(s.Top)
	}
	return s.Top[:n], nil
}
