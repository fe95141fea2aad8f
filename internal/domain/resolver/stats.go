// Package resolver defines the boundary to the long-running resolver
// process. The resolver itself lives outside this codebase; the API only
// reads its statistics and probes its liveness.
package resolver

import "context"

// Summary aggregates the resolver's counters for the current day.
type Summary struct {
	QueriesToday   int64   `json:"queries_today"`
	BlockedToday   int64   `json:"blocked_today"`
	PercentBlocked float64 `json:"percent_blocked"`
	DomainsOnLists int64   `json:"domains_on_lists"`
	UniqueClients  int64   `json:"unique_clients"`
}

// TopDomain is one entry of the most-queried or most-blocked ranking.
type TopDomain struct {
	Domain string `json:"domain"`
	Count  int64  `json:"count"`
}

// StatsReader exposes the resolver's statistics. The production
// implementation reads the resolver's shared-memory segment and is out of
// scope here; tests and the chronometer use a static implementation.
type StatsReader interface {
	// Summary returns today's aggregate counters.
	Summary(ctx context.Context) (Summary, error)

	// TopDomains returns the n most queried domains, most queried first.
	TopDomains(ctx context.Context, n int) ([]TopDomain, error)
}
