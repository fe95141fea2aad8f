package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/sinkhole/internal/tui/chronometer"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Live console dashboard of resolver statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		p := tea.NewProgram(chronometer.New(app.Stats), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("chronometer: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
}
