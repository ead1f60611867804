// ABOUTME: Reset command for deleting every entry
// ABOUTME: Requires typing 'yes' (or --force); compacts storage when the backend supports it

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper/moodlog/internal/kv"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all entries",
	Long:  "Permanently delete every entry in the journal. The title is kept. This cannot be undone.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		out := cmd.OutOrStdout()
		count := journalStore.Len()

		// An empty list still clears storage; a corrupt blob loads as empty.
		if !force && count > 0 {
			red := color.New(color.FgRed, color.Bold).SprintFunc()
			fmt.Fprintf(out, "%s This will permanently delete all %d entries.\n", red("WARNING:"), count)
			if !confirm(cmd, "\nType 'yes' to confirm: ", "yes") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if err := journalStore.DeleteAllEntries(); err != nil {
			return fmt.Errorf("failed to delete entries: %w", err)
		}

		if c, ok := kvStore.(kv.Compactor); ok {
			if err := journalStore.Flush(cmd.Context()); err != nil {
				return fmt.Errorf("failed to save journal: %w", err)
			}
			if err := c.Compact(); err != nil {
				logger.Warn("storage compaction failed", zap.Error(err))
			}
		}

		green := color.New(color.FgGreen).SprintFunc()
		if count == 0 {
			fmt.Fprintf(out, "%s Journal is already empty; stored entries cleared\n", green("✓"))
			return nil
		}
		fmt.Fprintf(out, "%s Deleted %d entries\n", green("✓"), count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().Bool("force", false, "skip confirmation prompt")
}
