// ABOUTME: Display-date formatting for journal entries
// ABOUTME: Maps a small set of locale tags to short numeric date layouts

package timeutil

import (
	"sort"
	"strings"
	"time"
)

// DefaultLocale is Turkish, the journal's default title language.
const DefaultLocale = "tr"

// dateLayouts holds the short date layout for each supported locale,
// mirroring what a platform's toLocaleDateString produces for that locale.
var dateLayouts = map[string]string{
	"tr":    "02.01.2006",
	"de":    "2.1.2006",
	"en-us": "1/2/2006",
	"en-gb": "02/01/2006",
	"fr":    "02/01/2006",
	"ja":    "2006/1/2",
	"iso":   "2006-01-02",
}

// normalizeLocale lowercases a tag and folds "en_US"-style separators.
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// LayoutFor returns the date layout for locale. Unknown locales fall back to
// their base language ("de-AT" uses "de"), then to DefaultLocale.
func LayoutFor(locale string) string {
	tag := normalizeLocale(locale)
	if layout, ok := dateLayouts[tag]; ok {
		return layout
	}
	if base, _, found := strings.Cut(tag, "-"); found {
		if layout, ok := dateLayouts[base]; ok {
			return layout
		}
	}
	if tag == "en" {
		return dateLayouts["en-us"]
	}
	return dateLayouts[DefaultLocale]
}

// SupportedLocale reports whether locale resolves to a layout of its own
// rather than the fallback.
func SupportedLocale(locale string) bool {
	tag := normalizeLocale(locale)
	if tag == "en" {
		return true
	}
	if _, ok := dateLayouts[tag]; ok {
		return true
	}
	base, _, _ := strings.Cut(tag, "-")
	_, ok := dateLayouts[base]
	return ok
}

// Locales lists the locale tags with explicit layouts, sorted.
func Locales() []string {
	out := make([]string, 0, len(dateLayouts))
	for tag := range dateLayouts {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// FormatDate renders t in the locale's short date layout.
func FormatDate(t time.Time, locale string) string {
	return t.Format(LayoutFor(locale))
}

// DateFormatter returns a formatter bound to locale.
func DateFormatter(locale string) func(time.Time) string {
	layout := LayoutFor(locale)
	return func(t time.Time) string {
		return t.Format(layout)
	}
}
