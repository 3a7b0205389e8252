package utils

import (
	"testing"
	"time"
)

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 10 {
		t.Errorf("DaysBetween = %d, want 10", got)
	}
	if got := DaysBetween(end, start); got != -10 {
		t.Errorf("reversed DaysBetween = %d, want -10", got)
	}
}

func TestFormatDateJapanese(t *testing.T) {
	cases := map[string]string{
		"2025-06-12": "6月12日（木）",
		"2025-06-08": "6月8日（日）",
		"2025-12-01": "12月1日（月）",
	}
	for input, want := range cases {
		if got := FormatDateJapanese(input); got != want {
			t.Errorf("FormatDateJapanese(%q) = %q, want %q", input, got, want)
		}
	}

	// Unparseable input passes through untouched.
	if got := FormatDateJapanese("not-a-date"); got != "not-a-date" {
		t.Errorf("passthrough = %q", got)
	}
}

func TestFormatDateString(t *testing.T) {
	d := time.Date(2025, 6, 9, 15, 30, 0, 0, time.UTC)
	if got := FormatDateString(d); got != "2025-06-09" {
		t.Errorf("FormatDateString = %q", got)
	}
}
