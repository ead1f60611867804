// ABOUTME: Title command for reading or changing the journal title
// ABOUTME: With no arguments prints the title; otherwise saves the new one

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/journal"
)

var titleCmd = &cobra.Command{
	Use:   "title [new-title...]",
	Short: "Show or change the journal title",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintln(out, journalStore.Title())
			return nil
		}

		title := strings.Join(args, " ")
		if err := journal.ValidateTitle(title); err != nil {
			return err
		}
		if err := journalStore.UpdateTitle(title); err != nil {
			return fmt.Errorf("failed to set title: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s Title set to %q\n", green("✓"), title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(titleCmd)
}
