// ABOUTME: Stats command for mood statistics
// ABOUTME: Prints total entries and a per-mood bar chart

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/models"
)

const statsBarWidth = 30

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mood statistics",
	Long:  "Show the total number of entries and how many carry each mood",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := journalStore.Stats()

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Fprintln(out, bold(journalStore.Title()))
		fmt.Fprintf(out, "Total entries: %d\n\n", stats.Total)

		for _, m := range models.AllMoods {
			n := stats.Count(m)
			bar, pct := "", 0
			if stats.Total > 0 {
				bar = strings.Repeat("█", n*statsBarWidth/stats.Total)
				pct = n * 100 / stats.Total
			}
			fmt.Fprintf(out, "%s %-8s %4d %s %s\n", m, m.Name(), n, cyan(bar), faint(fmt.Sprintf("%d%%", pct)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
