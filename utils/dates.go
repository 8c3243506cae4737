// utils/dates.go
package utils

import (
	"errors"
	"time"
)

const calendarDateLayout = "2006-01-02"

// BeginningOfDayUTC normalizes a timestamp to midnight UTC. All calendar-date
// comparisons in the reservation engine go through this.
func BeginningOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseCalendarDate parses a YYYY-MM-DD string into midnight UTC.
func ParseCalendarDate(s string) (time.Time, error) {
	t, err := time.Parse(calendarDateLayout, s)
	if err != nil {
		return time.Time{}, errors.New("date must be formatted YYYY-MM-DD")
	}
	return t, nil
}

// FormatCalendarDate renders a timestamp as its YYYY-MM-DD calendar date.
func FormatCalendarDate(t time.Time) string {
	return t.UTC().Format(calendarDateLayout)
}
