package engine

import (
	"time"

	"goaltrack/internal/storage"
)

// Day truncates t to its calendar day, expressed as midnight UTC so that
// AddDate arithmetic never crosses a DST boundary.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey formats a day as a history key.
func DayKey(t time.Time) string {
	return t.Format(storage.DateLayout)
}

// ParseDay parses a strict YYYY-MM-DD history key.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(storage.DateLayout, s)
}

func daysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}
