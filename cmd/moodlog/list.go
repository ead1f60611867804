// ABOUTME: List command for viewing entries with search and favorite filters
// ABOUTME: Displays entries newest first with id, mood, favorite mark, preview, and date

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/config"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List journal entries",
	Long:    "List entries newest first, optionally filtered by a search term (text or mood emoji) and favorites",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		favorites, _ := cmd.Flags().GetBool("favorites")
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("limit must be non-negative, got %d", limit)
		}

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Fprintln(out, bold(journalStore.Title()))

		if journalStore.Len() == 0 {
			fmt.Fprintln(out, "No entries yet. Write one with: moodlog add \"...\"")
			return nil
		}

		entries := journalStore.Query(search, favorites)
		if len(entries) == 0 {
			fmt.Fprintln(out, "No entries match your filters")
			return nil
		}

		total := len(entries)
		if limit > 0 && limit < total {
			entries = entries[:limit]
		}

		for _, e := range entries {
			fmt.Fprintf(out, "%s %s %s %s %s\n",
				faint(shortID(e.ID)),
				e.Mood,
				yellow(favoriteMark(e.IsFavorite)),
				preview(e.Text),
				faint(e.Date),
			)
		}

		if len(entries) < total {
			fmt.Fprintln(out, faint(fmt.Sprintf("Showing %d of %d entries (use --limit 0 for all)", len(entries), total)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("search", "s", "", "filter by text (case-insensitive) or mood emoji")
	listCmd.Flags().BoolP("favorites", "f", false, "show only favorite entries")
	listCmd.Flags().IntP("limit", "n", config.DefaultListLimit, "max entries to show (0 for all)")
}
