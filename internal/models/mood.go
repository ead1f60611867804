// ABOUTME: Mood enumeration for journal entries
// ABOUTME: Four fixed emoji moods with name aliases for CLI and MCP input

package models

import (
	"fmt"
	"strings"
)

// Mood is one of the fixed mood symbols an entry can carry.
type Mood string

const (
	MoodHappy   Mood = "😊"
	MoodNeutral Mood = "😐"
	MoodSad     Mood = "😢"
	MoodAngry   Mood = "😡"
)

// DefaultMood is preselected when adding an entry without an explicit mood.
const DefaultMood = MoodNeutral

// AllMoods lists the moods in display order.
var AllMoods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodAngry}

var moodNames = map[Mood]string{
	MoodHappy:   "happy",
	MoodNeutral: "neutral",
	MoodSad:     "sad",
	MoodAngry:   "angry",
}

// Valid reports whether m is one of the four known moods.
func (m Mood) Valid() bool {
	_, ok := moodNames[m]
	return ok
}

// Name returns the English name of the mood, or "" for unknown values.
func (m Mood) Name() string {
	return moodNames[m]
}

func (m Mood) String() string {
	return string(m)
}

// ParseMood accepts either the emoji itself or its English name (case-insensitive).
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if m := Mood(s); m.Valid() {
		return m, nil
	}
	lower := strings.ToLower(s)
	for m, name := range moodNames {
		if name == lower {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mood %q (want one of happy, neutral, sad, angry)", s)
}
