// ABOUTME: Add command for writing a new diary entry
// ABOUTME: Joins arguments into the entry text and tags it with a mood

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/journal"
	"github.com/harper/moodlog/internal/models"
)

var addCmd = &cobra.Command{
	Use:     "add <text...>",
	Aliases: []string{"a", "new"},
	Short:   "Add a diary entry",
	Long: `Add a new entry to the top of the journal.

Mood may be given as an emoji or a name:
  😊 happy   😐 neutral   😢 sad   😡 angry

Example:
  moodlog add --mood happy "tatil zamanı"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moodArg, _ := cmd.Flags().GetString("mood")
		favorite, _ := cmd.Flags().GetBool("favorite")

		text := strings.Join(args, " ")
		if err := journal.ValidateText(text); err != nil {
			return err
		}
		mood, err := models.ParseMood(moodArg)
		if err != nil {
			return err
		}

		entry, err := journalStore.AddEntry(mood, text, favorite)
		if err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s %s\n", green("✓"), entry.Mood, faint(shortID(entry.ID)), faint(entry.Date))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("mood", "m", string(models.DefaultMood), "entry mood (emoji or happy/neutral/sad/angry)")
	addCmd.Flags().BoolP("favorite", "f", false, "mark the entry as a favorite")
}
