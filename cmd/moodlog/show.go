// ABOUTME: Show command for viewing a single entry in full
// ABOUTME: Renders the entry text as markdown with glamour, optionally copying it

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper/moodlog/internal/config"
)

var showCmd = &cobra.Command{
	Use:     "show <entry-id>",
	Aliases: []string{"read", "view"},
	Short:   "Show an entry",
	Long:    "Display the full text of an entry. Accepts a full id or a unique prefix.",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		copyText, _ := cmd.Flags().GetBool("copy")

		entry, err := journalStore.Resolve(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Fprintln(out, strings.Repeat("─", config.SeparatorWidth))
		fmt.Fprintf(out, "%s %s\n\n", entry.Mood, bold(entry.Mood.Name()))
		fmt.Fprintf(out, "%s %s\n", faint("Date:"), entry.Date)
		fmt.Fprintf(out, "%s %s\n", faint("ID:"), entry.ID)
		if entry.IsFavorite {
			fmt.Fprintf(out, "%s\n", yellow("★ Favorite"))
		}
		fmt.Fprintln(out, strings.Repeat("─", config.SeparatorWidth))

		if copyText {
			if err := clipboard.WriteAll(entry.Text); err != nil {
				logger.Warn("clipboard copy failed", zap.Error(err))
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not copy to clipboard: %v\n", err)
			} else {
				fmt.Fprintf(out, "%s\n", faint("Text copied to clipboard"))
			}
		}

		if plain {
			fmt.Fprintf(out, "\n%s\n\n", entry.Text)
			return nil
		}

		rendered, err := glamour.Render(entry.Text, "dark")
		if err != nil {
			fmt.Fprintf(out, "%s\n", faint("(markdown rendering unavailable, showing plain text)"))
			fmt.Fprintf(out, "\n%s\n", entry.Text)
		} else {
			fmt.Fprint(out, rendered)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("plain", false, "print the text without markdown rendering")
	showCmd.Flags().Bool("copy", false, "copy the entry text to the clipboard")
}
