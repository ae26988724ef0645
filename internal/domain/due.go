package domain

import (
	"slices"
	"strings"
	"time"
)

// due date layouts used by the add form and the board display.
const (
	ISODateLayout     = "2006-01-02"
	DisplayDateLayout = "02-01-2006"
)

// FormatDueDate converts an ISO YYYY-MM-DD form value into DD-MM-YYYY display text.
// Values that are not ISO dates have their dash-separated parts reversed and are otherwise kept as-is.
func FormatDueDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if ts, err := time.Parse(ISODateLayout, raw); err == nil {
		return ts.Format(DisplayDateLayout)
	}
	parts := strings.Split(raw, "-")
	slices.Reverse(parts)
	return strings.Join(parts, "-")
}

// NormalizeDueDate prepares an edited due date for display.
// ISO input is reformatted, display input is kept, anything else passes through.
func NormalizeDueDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if ts, err := time.Parse(ISODateLayout, raw); err == nil {
		return ts.Format(DisplayDateLayout)
	}
	return raw
}

// ParseDisplayDate parses DD-MM-YYYY display text.
func ParseDisplayDate(raw string) (time.Time, bool) {
	ts, err := time.Parse(DisplayDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
