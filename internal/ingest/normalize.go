package ingest

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts lists the accepted date formats in priority order: ISO-like
// forms first, then day-first European forms, then the slash forms.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"02/01/2006",
	"2006/01/02",
}

// lenientLayouts is the last-resort ladder for inputs that match none of
// the fixed formats: month-first variants are tried before day-first ones.
var lenientLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"01/02/2006",
	"01-02-2006",
	"02-01-2006",
	"2.1.2006",
}

// ParseDate coerces a raw date value into a canonical timestamp. A pure
// integer is interpreted as Unix epoch seconds. Unparseable input yields
// the zero time; it never returns an error so a single bad row cannot
// abort the batch.
func ParseDate(raw string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	for _, layout := range lenientLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseAmount coerces a raw amount value to a float. Comma decimal
// separators and surrounding spaces are tolerated. Unparseable input
// defaults to 0.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
