// ABOUTME: Entry model representing a single mood journal record
// ABOUTME: Field names match the persisted JSON blob exactly

package models

import "strings"

// Entry is one diary record. ID and Date are fixed at creation.
type Entry struct {
	ID         string `json:"id" yaml:"id"`
	Mood       Mood   `json:"mood" yaml:"mood"`
	Text       string `json:"text" yaml:"text"`
	IsFavorite bool   `json:"isFavorite" yaml:"isFavorite"`
	Date       string `json:"date" yaml:"date"`
}

// Matches reports whether the entry passes a search and favorites filter.
// An empty search matches everything. Text matching ignores case; mood
// matching is a plain substring check against the emoji.
func (e Entry) Matches(search string, favoritesOnly bool) bool {
	if favoritesOnly && !e.IsFavorite {
		return false
	}
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Text), strings.ToLower(search)) {
		return true
	}
	return strings.Contains(string(e.Mood), search)
}

// Stats holds entry totals per mood.
type Stats struct {
	Total   int `json:"total"`
	Happy   int `json:"happy"`
	Neutral int `json:"neutral"`
	Sad     int `json:"sad"`
	Angry   int `json:"angry"`
}

// Count returns the count recorded for a single mood.
func (s Stats) Count(m Mood) int {
	switch m {
	case MoodHappy:
		return s.Happy
	case MoodNeutral:
		return s.Neutral
	case MoodSad:
		return s.Sad
	case MoodAngry:
		return s.Angry
	}
	return 0
}

// ComputeStats tallies entries by mood. Entries with unknown moods count
// toward Total only.
func ComputeStats(entries []Entry) Stats {
	s := Stats{Total: len(entries)}
	for _, e := range entries {
		switch e.Mood {
		case MoodHappy:
			s.Happy++
		case MoodNeutral:
			s.Neutral++
		case MoodSad:
			s.Sad++
		case MoodAngry:
			s.Angry++
		}
	}
	return s
}
