// ABOUTME: Tests for locale date formatting
// ABOUTME: Fixed timestamps keep expectations deterministic

package timeutil

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{"tr", "07.03.2026"},
		{"TR", "07.03.2026"},
		{"tr-TR", "07.03.2026"},
		{"de", "7.3.2026"},
		{"de_AT", "7.3.2026"},
		{"en-US", "3/7/2026"},
		{"en", "3/7/2026"},
		{"en-GB", "07/03/2026"},
		{"ja", "2026/3/7"},
		{"iso", "2026-03-07"},
		{"xx", "07.03.2026"},
		{"", "07.03.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := FormatDate(ts, tt.locale); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestDateFormatter(t *testing.T) {
	ts := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
	f := DateFormatter("en-US")
	if got := f(ts); got != "10/16/2026" {
		t.Errorf("expected 10/16/2026, got %q", got)
	}
}

func TestSupportedLocale(t *testing.T) {
	for _, tag := range Locales() {
		if !SupportedLocale(tag) {
			t.Errorf("expected %q to be supported", tag)
		}
	}
	if !SupportedLocale("en") {
		t.Error("expected bare en to be supported")
	}
	if !SupportedLocale("tr-TR") {
		t.Error("expected regional tag to be supported via its base language")
	}
	if SupportedLocale("xx") {
		t.Error("expected unknown locale to be unsupported")
	}
}
