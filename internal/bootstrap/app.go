// Package bootstrap is the composition root: it builds the config, logger,
// storage backend, resolver boundary and HTTP server, and binds exactly one
// ListRepository implementation for the lifetime of the process.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/sinkhole/internal/api"
	"github.com/bnema/sinkhole/internal/domain/build"
	"github.com/bnema/sinkhole/internal/domain/repository"
	"github.com/bnema/sinkhole/internal/domain/resolver"
	"github.com/bnema/sinkhole/internal/infrastructure/config"
	"github.com/bnema/sinkhole/internal/infrastructure/env"
	"github.com/bnema/sinkhole/internal/infrastructure/persistence/memory"
	"github.com/bnema/sinkhole/internal/infrastructure/persistence/sqlite"
	infraresolver "github.com/bnema/sinkhole/internal/infrastructure/resolver"
	"github.com/bnema/sinkhole/internal/logging"
)

// Store selects the list-storage backend.
type Store string

const (
	// StoreSQLite is the durable gravity-database backend.
	StoreSQLite Store = "sqlite"
	// StoreMemory is the in-memory backend, for tests and dry runs.
	StoreMemory Store = "memory"
)

// Options configures App construction.
type Options struct {
	// ConfigDir overrides the config search path when non-empty.
	ConfigDir string
	// Store selects the storage backend. Defaults to StoreSQLite.
	Store Store
	// Build carries the ldflags build information.
	Build build.Info
}

// App owns every long-lived collaborator of the daemon.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Logger  zerolog.Logger
	Repo    repository.ListRepository
	Env     env.Env
	Stats   resolver.StatsReader
	Prober  api.ResolverProber
	Build   build.Info

	db *sql.DB
}

// New loads the configuration and wires the application together. The
// returned App holds the single repository binding every caller shares.
func New(ctx context.Context, opts Options) (*App, error) {
	manager := config.NewManager(opts.ConfigDir)
	if err := manager.Load(); err != nil {
		return nil, err
	}
	cfg := manager.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx = logging.WithContext(ctx, logger)

	app := &App{
		Config:  cfg,
		Manager: manager,
		Logger:  logger,
		Env:     env.NewFilesystem(cfg.FileLocations.Locations()),
		Prober:  infraresolver.NewProber(cfg.Resolver.Address),
		Build:   opts.Build,
		// The shared-memory statistics reader ships with the resolver
		// process; until it is attached, stats read as zeros.
		Stats: &resolver.StaticStats{},
	}

	store := opts.Store
	if store == "" {
		store = StoreSQLite
	}

	switch store {
	case StoreSQLite:
		db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		app.db = db
		app.Repo = sqlite.NewListRepository(db)
	case StoreMemory:
		app.Repo = memory.NewListRepository()
	default:
		return nil, fmt.Errorf("unknown store %q", store)
	}

	return app, nil
}

// Close releases the App's resources.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}

// Run serves the management API until ctx is cancelled, then shuts the
// listener down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := api.NewServer(api.Options{
		Repo:         a.Repo,
		Stats:        a.Stats,
		Prober:       a.Prober,
		Env:          a.Env,
		Build:        a.Build,
		PasswordHash: a.Config.API.PasswordHash,
		Logger:       a.Logger,
	})

	addr := net.JoinHostPort(a.Config.Server.Address, strconv.Itoa(a.Config.Server.Port))
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Pick up config file edits; listener and auth settings need a restart
	// and the reload only logs the fact.
	a.Manager.OnChange(func(*config.Config) {
		a.Logger.Info().Msg("configuration reloaded, restart to apply server settings")
	})
	a.Manager.Watch()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info().Str("addr", addr).Msg("management API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
