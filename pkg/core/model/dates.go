package model

import (
	"fmt"
	"regexp"
	"time"
)

const DateLayout = "2006-01-02"

var canonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Layouts the backend has been seen emitting for shift keys. Apps Script
// serializes Date cells as RFC 3339 timestamps and some sheets carry
// slash-separated keys typed in by hand.
var dateKeyLayouts = []string{
	DateLayout,
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"Mon Jan 02 2006",
}

// NormalizeDateKey converts any recognizable date string to canonical
// YYYY-MM-DD. Unrecognizable keys are returned unchanged so bad rows stay
// visible instead of silently vanishing.
func NormalizeDateKey(key string) string {
	if canonicalDate.MatchString(key) {
		return key
	}
	for _, layout := range dateKeyLayouts {
		if t, err := time.Parse(layout, key); err == nil {
			return t.Format(DateLayout)
		}
	}
	return key
}

// ParseDate parses a canonical date key.
func ParseDate(key string) (time.Time, error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", key, err)
	}
	return t, nil
}

// MonthPrefix returns the "YYYY-MM" prefix shared by every date key in the
// given month.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
