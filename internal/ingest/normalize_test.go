package ingest

import (
	"testing"
	"time"
)

func TestParseDate_Formats(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-15 14:30:00", time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"2025-06-15T14:30:00", time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"15.06.2025 14:30:00", time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"15.06.2025", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"15/06/2025", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2025/06/15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := ParseDate(tt.in)
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDate_EpochSeconds(t *testing.T) {
	got := ParseDate("1750000000")
	want := time.Unix(1750000000, 0).UTC()
	if !got.Equal(want) {
		t.Errorf("ParseDate epoch = %v, want %v", got, want)
	}
}

func TestParseDate_DayFirstPriority(t *testing.T) {
	// 05.03.2025 must be March 5th, not May 3rd.
	got := ParseDate("05.03.2025")
	if got.Month() != time.March || got.Day() != 5 {
		t.Errorf("expected 5 March, got %v", got)
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	for _, in := range []string{"", "not a date", "99.99.9999"} {
		if got := ParseDate(in); !got.IsZero() {
			t.Errorf("ParseDate(%q) = %v, want zero time", in, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1234.56", 1234.56},
		{"1234,56", 1234.56},
		{"-500", -500},
		{" 42 ", 42},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
