package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// StartOfMonthUTC returns midnight UTC on the first day of t's UTC month
func StartOfMonthUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParseTimeParam parses an RFC3339 timestamp or a YYYY-MM-DD date (UTC midnight)
func ParseTimeParam(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: expected RFC3339 or YYYY-MM-DD", value)
}
