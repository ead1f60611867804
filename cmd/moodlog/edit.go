// ABOUTME: Edit command for changing an existing entry
// ABOUTME: Updates mood, text, or favorite flag while keeping id and date

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/journal"
	"github.com/harper/moodlog/internal/models"
)

var editCmd = &cobra.Command{
	Use:   "edit <entry-id>",
	Short: "Edit an entry",
	Long:  "Change an entry's mood, text, or favorite flag. Flags that are not given keep their current value. Accepts a full id or a unique prefix.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := journalStore.Resolve(args[0])
		if err != nil {
			return err
		}

		mood, text, fav := entry.Mood, entry.Text, entry.IsFavorite
		flags := cmd.Flags()
		if !flags.Changed("mood") && !flags.Changed("text") && !flags.Changed("favorite") && !flags.Changed("no-favorite") {
			return fmt.Errorf("nothing to change: use --mood, --text, --favorite, or --no-favorite")
		}
		if flags.Changed("mood") {
			moodArg, _ := flags.GetString("mood")
			if mood, err = models.ParseMood(moodArg); err != nil {
				return err
			}
		}
		if flags.Changed("text") {
			text, _ = flags.GetString("text")
			if err := journal.ValidateText(text); err != nil {
				return err
			}
		}
		if flags.Changed("favorite") {
			fav, _ = flags.GetBool("favorite")
		}
		if flags.Changed("no-favorite") {
			if unfav, _ := flags.GetBool("no-favorite"); unfav {
				fav = false
			}
		}

		found, err := journalStore.EditEntry(entry.ID, mood, text, fav)
		if err != nil {
			return fmt.Errorf("failed to edit entry: %w", err)
		}
		if !found {
			return fmt.Errorf("%w: %s", journal.ErrNotFound, entry.ID)
		}

		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s %s %s\n", green("✓"), mood, faint(shortID(entry.ID)), favoriteMark(fav))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringP("mood", "m", "", "new mood (emoji or happy/neutral/sad/angry)")
	editCmd.Flags().StringP("text", "t", "", "new entry text")
	editCmd.Flags().BoolP("favorite", "f", false, "mark as favorite")
	editCmd.Flags().Bool("no-favorite", false, "remove favorite mark")

	editCmd.MarkFlagsMutuallyExclusive("favorite", "no-favorite")
}
