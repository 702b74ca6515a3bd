// Package clock supplies the time source shared by every engine and the
// calendar-day helpers used for daily resets.
//
// All day boundaries are UTC midnight. Days are stored and compared as
// "2006-01-02" strings produced by Day, never by locale formatting.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source engines read from. Tests use clockwork's fake clock.
type Clock = clockwork.Clock

// DayLayout is the canonical calendar-day format.
const DayLayout = "2006-01-02"

// New returns the wall clock.
func New() Clock {
	return clockwork.NewRealClock()
}

// Day returns the UTC calendar day containing t.
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// Today returns the current UTC calendar day.
func Today(c Clock) string {
	return Day(c.Now())
}

// StartOfDay returns UTC midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a day string produced by Day.
func ParseDay(day string) (time.Time, bool) {
	t, err := time.ParseInLocation(DayLayout, day, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween returns the number of whole calendar days from one day to
// another. It reports false if either day is not a valid day string.
func DaysBetween(from, to string) (int, bool) {
	a, ok := ParseDay(from)
	if !ok {
		return 0, false
	}
	b, ok := ParseDay(to)
	if !ok {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}
