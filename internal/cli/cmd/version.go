package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sinkhole/internal/domain/build"
	"github.com/bnema/sinkhole/internal/infrastructure/config"
	"github.com/bnema/sinkhole/internal/infrastructure/env"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show API and appliance component versions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Printf("sinkhole API %s (commit %s, built %s, %s)\n",
			buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion)
		fmt.Println(build.RepoURL())

		// Component versions come from the appliance files; show them when
		// readable, stay quiet otherwise.
		manager := config.NewManager(configDir)
		if err := manager.Load(); err != nil {
			return nil
		}
		e := env.NewFilesystem(manager.Get().FileLocations.Locations())

		if core, ok := env.ReadCoreVersion(e); ok {
			fmt.Printf("core: tag=%q branch=%q hash=%s\n", core.Tag, core.Branch, core.Hash)
		}
		if web, ok := env.ReadWebVersion(e); ok {
			fmt.Printf("web:  tag=%q branch=%q hash=%s\n", web.Tag, web.Branch, web.Hash)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
