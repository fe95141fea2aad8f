// Package cmd provides Cobra CLI commands for the sinkhole API daemon.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sinkhole/internal/bootstrap"
	"github.com/bnema/sinkhole/internal/domain/build"
)

var (
	buildInfo build.Info

	// Persistent flags shared by every subcommand.
	configDir string
	storeName string

	rootCmd = &cobra.Command{
		Use:   "sinkhole",
		Short: "Management API for the sinkhole DNS ad-blocking appliance",
		Long: `Sinkhole - management daemon for a network-wide DNS ad-blocking appliance.

The daemon exposes an HTTP API for editing the allow, deny and regex
blocklists, reading configuration, and reporting component versions and
resolver status. The DNS resolver itself runs as a separate process; this
daemon only administers it.

Use 'sinkhole serve' to run the API, or explore the subcommands for local
administration like list editing and live statistics.`,
		SilenceUsage: true,
	}
)

// SetBuildInfo passes the ldflags build information from main.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// ExecuteContext runs the root command under ctx, so an interrupt reaches
// every subcommand.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the application per the persistent flags.
func newApp(cmd *cobra.Command) (*bootstrap.App, error) {
	app, err := bootstrap.New(cmd.Context(), bootstrap.Options{
		ConfigDir: configDir,
		Store:     bootstrap.Store(storeName),
		Build:     buildInfo,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize app: %w", err)
	}
	return app, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default /etc/sinkhole)")
	rootCmd.PersistentFlags().StringVar(&storeName, "store", string(bootstrap.StoreSQLite), "list storage backend (sqlite or memory)")
}
