// ABOUTME: Delete command for removing a single entry
// ABOUTME: Asks for confirmation unless --force is given

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <entry-id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete an entry",
	Long:    "Permanently delete one entry. Accepts a full id or a unique prefix.",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		entry, err := journalStore.Resolve(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !force {
			fmt.Fprintf(out, "%s %s %s\n", shortID(entry.ID), entry.Mood, preview(entry.Text))
			if !confirm(cmd, "Delete this entry? [y/N]: ", "y", "Y") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if _, err := journalStore.DeleteEntry(entry.ID); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s Deleted %s\n", green("✓"), shortID(entry.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().Bool("force", false, "skip confirmation prompt")
}
