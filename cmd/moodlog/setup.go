// ABOUTME: Cobra command for interactive moodlog configuration.
// ABOUTME: Launches a bubbletea TUI wizard to select backend, data directory, and date locale.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/config"
	"github.com/harper/moodlog/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:         "setup",
	Short:       "Configure moodlog storage and date format",
	Long:        "Interactive wizard to configure storage backend, data directory, and the locale used for entry dates.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoJournal: "true"},
	RunE:        runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := tui.NewSetupModel(cfg.Backend, cfg.DataDir, cfg.DateLocale)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Fprintln(cmd.OutOrStdout(), "Setup canceled.")
		return nil
	}

	cfg.Backend, cfg.DataDir, cfg.DateLocale = final.Result()

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", config.GetConfigPath())
	return nil
}
