// ABOUTME: Tests for the Mood enumeration
// ABOUTME: Covers emoji and name parsing plus validity checks

package models

import "testing"

func TestParseMood(t *testing.T) {
	tests := []struct {
		input   string
		want    Mood
		wantErr bool
	}{
		{input: "😊", want: MoodHappy},
		{input: "😐", want: MoodNeutral},
		{input: "😢", want: MoodSad},
		{input: "😡", want: MoodAngry},
		{input: "happy", want: MoodHappy},
		{input: "SAD", want: MoodSad},
		{input: "  Angry ", want: MoodAngry},
		{input: "neutral", want: MoodNeutral},
		{input: "ecstatic", wantErr: true},
		{input: "", wantErr: true},
		{input: "🙂", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMood(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got mood %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMoodValid(t *testing.T) {
	for _, m := range AllMoods {
		if !m.Valid() {
			t.Errorf("expected %q to be valid", m)
		}
		if m.Name() == "" {
			t.Errorf("expected %q to have a name", m)
		}
	}
	if Mood("x").Valid() {
		t.Error("expected unknown mood to be invalid")
	}
	if !DefaultMood.Valid() {
		t.Error("expected default mood to be valid")
	}
}
