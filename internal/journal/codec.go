// ABOUTME: Serialization of the entry list blob stored under journal_data
// ABOUTME: Versionless JSON array; invalid records are dropped on decode

package journal

import (
	"encoding/json"
	"fmt"

	"github.com/harper/moodlog/internal/models"
)

// encodeEntries renders entries as the JSON array persisted under KeyEntries.
// An empty list encodes as "[]", never "null".
func encodeEntries(entries []models.Entry) (string, error) {
	if entries == nil {
		entries = []models.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshal entries: %w", err)
	}
	return string(data), nil
}

// decodeEntries parses a persisted blob. A blob that is not a JSON array of
// entry records is an error. Records with an empty id, an unknown mood, or
// an id seen earlier in the list are skipped and counted.
func decodeEntries(blob string) ([]models.Entry, int, error) {
	var raw []models.Entry
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, 0, fmt.Errorf("unmarshal entries: %w", err)
	}

	entries := make([]models.Entry, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	skipped := 0
	for _, e := range raw {
		if e.ID == "" || !e.Mood.Valid() || seen[e.ID] {
			skipped++
			continue
		}
		seen[e.ID] = true
		entries = append(entries, e)
	}
	return entries, skipped, nil
}
