// ABOUTME: Export command for backing up the journal
// ABOUTME: Writes title and entries as JSON, YAML, or Markdown to stdout or a file

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/moodlog/internal/config"
	"github.com/harper/moodlog/internal/kv"
	"github.com/harper/moodlog/internal/models"
)

// exportDocument is the JSON and YAML export layout.
type exportDocument struct {
	Title      string         `json:"title" yaml:"title"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Stats      models.Stats   `json:"stats" yaml:"stats"`
	Entries    []models.Entry `json:"entries" yaml:"entries"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal",
	Long:  "Export the title and all entries as JSON, YAML, or Markdown, to standard output or a file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		data, err := renderExport(format, journalStore.Title(), journalStore.Entries(), time.Now())
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := kv.AtomicWrite(config.ExpandPath(output), data); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", journalStore.Len(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", config.ExportJSON, "output format: json, yaml, or markdown")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func renderExport(format, title string, entries []models.Entry, now time.Time) ([]byte, error) {
	if entries == nil {
		entries = []models.Entry{}
	}
	doc := exportDocument{
		Title:      title,
		ExportedAt: now.UTC(),
		Stats:      models.ComputeStats(entries),
		Entries:    entries,
	}

	switch strings.ToLower(format) {
	case config.ExportJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case config.ExportYAML, "yml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	case config.ExportMarkdown, "md":
		return []byte(renderMarkdown(doc)), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (valid: json, yaml, markdown)", format)
	}
}

func renderMarkdown(doc exportDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "_%d entries, exported %s_\n\n", doc.Stats.Total, doc.ExportedAt.Format(time.RFC3339))

	for _, m := range models.AllMoods {
		fmt.Fprintf(&b, "- %s %s: %d\n", m, m.Name(), doc.Stats.Count(m))
	}

	for _, e := range doc.Entries {
		fav := ""
		if e.IsFavorite {
			fav = " ★"
		}
		fmt.Fprintf(&b, "\n## %s %s%s\n\n%s\n", e.Mood, e.Date, fav, e.Text)
	}
	return b.String()
}
