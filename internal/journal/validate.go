// ABOUTME: Input guards applied by callers before invoking the journal
// ABOUTME: The store itself accepts any text or title; these checks live at the call site

package journal

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyText is returned by ValidateText for blank entry text.
	ErrEmptyText = errors.New("entry text cannot be empty")

	// ErrEmptyTitle is returned by ValidateTitle for a blank journal title.
	ErrEmptyTitle = errors.New("journal title cannot be empty")
)

// ValidateText rejects text that is empty after trimming whitespace.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

// ValidateTitle rejects a title that is empty after trimming whitespace.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
