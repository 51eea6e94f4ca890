package utils

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used as the ledger key.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in DateLayout and rejects anything that is
// not already in canonical form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("date %q is not in %s form", s, DateLayout)
	}
	return t, nil
}

// ParseDayInput accepts either "2025-02-07" or "07/02/25" and returns the
// canonical date string.
func ParseDayInput(s string) (string, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		t, err = time.ParseInLocation("02/01/06", s, time.Local)
	}
	if err != nil {
		return "", fmt.Errorf("failed to parse day %q: %w", s, err)
	}
	return t.Format(DateLayout), nil
}

// Today returns the current local date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// FormatDay renders a ledger date for display, e.g. "Mon, 02 Jan 2006".
// Unparseable input is returned unchanged.
func FormatDay(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Mon, 02 Jan 2006")
}
