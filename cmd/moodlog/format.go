// ABOUTME: Shared output helpers for CLI commands
// ABOUTME: Short ids, one-line previews, favorite markers, and confirmation prompts

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/config"
)

func shortID(id string) string {
	if len(id) > config.DisplayIDLength {
		return id[:config.DisplayIDLength]
	}
	return id
}

// preview flattens text to one line and truncates it to config.PreviewLength runes.
func preview(text string) string {
	line := strings.Join(strings.Fields(text), " ")
	runes := []rune(line)
	if len(runes) > config.PreviewLength {
		return string(runes[:config.PreviewLength-1]) + "…"
	}
	return line
}

func favoriteMark(fav bool) string {
	if fav {
		return "★"
	}
	return " "
}

// confirm prints prompt and reports whether the next input line equals one of want.
func confirm(cmd *cobra.Command, prompt string, want ...string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(answer)

	for _, w := range want {
		if answer == w {
			return true
		}
	}
	return false
}
