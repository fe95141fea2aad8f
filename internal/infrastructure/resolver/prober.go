// Package resolver provides the infrastructure side of the resolver
// boundary: a liveness probe speaking actual DNS to the local resolver.
package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/sinkhole/internal/logging"
	"github.com/miekg/dns"
)

// probeDomain is a name the resolver must always be able to answer; it is
// on no blocklist by convention.
const probeDomain = "localhost."

// Prober checks whether the resolver process answers DNS queries.
type Prober struct {
	address string
	client  *dns.Client
}

// NewProber creates a Prober against the resolver at address (host:port).
func NewProber(address string) *Prober {
	return &Prober{
		address: address,
		client:  &dns.Client{Timeout: 2 * time.Second},
	}
}

// Alive sends a single A query to the resolver and reports whether a reply
// came back. Any reply counts; the probe checks liveness, not correctness.
func (p *Prober) Alive(ctx context.Context) error {
	log := logging.FromContext(ctx)

	msg := new(dns.Msg)
	msg.SetQuestion(probeDomain, dns.TypeA)

	reply, rtt, err := p.client.ExchangeContext(ctx, msg, p.address)
	if err != nil {
		return fmt.Errorf("resolver did not answer: %w", err)
	}

	log.Debug().
		Str("resolver", p.address).
		Dur("rtt", rtt).
		Str("rcode", dns.RcodeToString[reply.Rcode]).
		Msg("resolver probe answered")

	return nil
}
