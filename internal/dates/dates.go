// Package dates implements the calendar-date policy for the day view:
// display labels and the past-day lock.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the wire and CLI date format.
const ISODate = "2006-01-02"

// WeekdayLabel returns the lowercase weekday name, e.g. "sunday".
func WeekdayLabel(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// DayMonthLabel returns the day/month header, e.g. "08/01".
func DayMonthLabel(date time.Time) string {
	return date.Format("02/01")
}

// EndOfDay returns the last instant of date's calendar day,
// 23:59:59.999 in the date's location.
func EndOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), date.Location())
}

// IsPast reports whether date's end-of-day instant is strictly before
// now. It is recomputed on every call; "now" advances.
func IsPast(date, now time.Time) bool {
	return EndOfDay(date).Before(now)
}

// Parse reads a YYYY-MM-DD date, accepting "today" (or an empty string)
// as the current date.
func Parse(s string, now time.Time) (time.Time, error) {
	if s == "" || s == "today" {
		return now, nil
	}
	date, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return date, nil
}
