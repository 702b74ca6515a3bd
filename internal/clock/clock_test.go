package clock

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestDayUsesUTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	loc := time.FixedZone("EST", -5*60*60)
	local := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)

	if got := Day(local); got != "2024-03-10" {
		t.Errorf("Expected 2024-03-10, got %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
		ok       bool
	}{
		{"2024-01-01", "2024-01-01", 0, true},
		{"2024-01-01", "2024-01-02", 1, true},
		{"2024-01-01", "2024-01-03", 2, true},
		{"2024-02-28", "2024-03-01", 2, true},
		{"2023-12-31", "2024-01-01", 1, true},
		{"2024-01-03", "2024-01-01", -2, true},
		{"", "2024-01-01", 0, false},
		{"2024-01-01", "01/02/2024", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			got, ok := DaysBetween(tt.from, tt.to)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Expected (%d, %v), got (%d, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestTodayFollowsClock(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC))
	if got := Today(fake); got != "2024-06-30" {
		t.Fatalf("Expected 2024-06-30, got %s", got)
	}
	fake.Advance(2 * time.Minute)
	if got := Today(fake); got != "2024-07-01" {
		t.Errorf("Expected 2024-07-01 after midnight, got %s", got)
	}
}
