// ABOUTME: Tests for CLI output helpers
// ABOUTME: Covers id shortening, previews, and confirmation prompts

package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/config"
)

func TestShortID(t *testing.T) {
	if got := shortID("abcdef12-3456"); got != "abcdef12" {
		t.Errorf("expected abcdef12, got %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("expected short ids unchanged, got %q", got)
	}
}

func TestPreview(t *testing.T) {
	if got := preview("line one\nline  two"); got != "line one line two" {
		t.Errorf("expected flattened text, got %q", got)
	}

	long := strings.Repeat("ğ", config.PreviewLength+10)
	got := preview(long)
	if utf8.RuneCountInString(got) != config.PreviewLength {
		t.Errorf("expected %d runes, got %d", config.PreviewLength, utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis, got %q", got)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"  yes  \n", true},
		{"y\n", false},
		{"YES\n", false},
		{"", false},
	}
	for _, tt := range tests {
		cmd := &cobra.Command{}
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetIn(strings.NewReader(tt.input))

		if got := confirm(cmd, "Type 'yes': ", "yes"); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Type 'yes'") {
			t.Error("expected prompt to be printed")
		}
	}
}
