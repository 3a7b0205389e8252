// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

var dayNamesJA = []string{"日", "月", "火", "水", "木", "金", "土"}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// FormatDateString renders a date as YYYY-MM-DD.
func FormatDateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayNameJA returns the single-character Japanese weekday name.
func DayNameJA(dayOfWeek int) string {
	return dayNamesJA[dayOfWeek]
}

// FormatDateJapanese renders "M月D日（曜）" from a YYYY-MM-DD string.
func FormatDateJapanese(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d月%d日（%s）", int(t.Month()), t.Day(), dayNamesJA[int(t.Weekday())])
}
