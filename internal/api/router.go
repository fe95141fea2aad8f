// Package api exposes the appliance's management HTTP API: list CRUD,
// version and status reporting, and Prometheus metrics.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/bnema/sinkhole/internal/domain/build"
	"github.com/bnema/sinkhole/internal/domain/repository"
	"github.com/bnema/sinkhole/internal/domain/resolver"
	"github.com/bnema/sinkhole/internal/infrastructure/env"
)

// ResolverProber checks resolver liveness for the status endpoint.
type ResolverProber interface {
	Alive(ctx context.Context) error
}

// Server holds the API's collaborators. It only ever sees the
// ListRepository interface; which backend sits behind it is decided by the
// composition root.
type Server struct {
	repo         repository.ListRepository
	stats        resolver.StatsReader
	prober       ResolverProber
	env          env.Env
	build        build.Info
	passwordHash string
	logger       zerolog.Logger
}

// Options configures a Server.
type Options struct {
	Repo         repository.ListRepository
	Stats        resolver.StatsReader
	Prober       ResolverProber
	Env          env.Env
	Build        build.Info
	PasswordHash string
	Logger       zerolog.Logger
}

// NewServer creates the API server from its collaborators.
func NewServer(opts Options) *Server {
	return &Server{
		repo:         opts.Repo,
		stats:        opts.Stats,
		prober:       opts.Prober,
		env:          opts.Env,
		build:        opts.Build,
		passwordHash: opts.PasswordHash,
		logger:       opts.Logger,
	}
}

// Router builds the chi router with all routes and middleware attached.
// List reads, version and status are open; list mutations require the
// admin token.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(s.logger))
	r.Use(metricsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", s.handleVersion)
		r.Get("/status", s.handleStatus)
		r.Get("/stats/top-domains", s.handleTopDomains)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(s.passwordHash))
			r.Post("/status/blocking", s.handleSetBlocking)
		})

		r.Route("/lists/{list}", func(r chi.Router) {
			r.Get("/", s.handleGetList)
			r.Get("/{domain}", s.handleContains)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth(s.passwordHash))
				r.Post("/", s.handleAddDomain)
				r.Delete("/{domain}", s.handleRemoveDomain)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
