// Package checkin runs the daily check-in streak and its fragment rewards.
package checkin

import (
	"errors"
	"log"
	"slices"

	"pony/internal/clock"
	"pony/internal/store"
)

var ErrAlreadyCheckedIn = errors.New("already checked in today")

// RewardFragments is the only reward kind check-ins hand out
const RewardFragments = "decoration_fragment"

// Record is the persisted check-in state
type Record struct {
	LastDate  string   `json:"last_date"`
	Streak    int      `json:"streak"`
	TotalDays int      `json:"total_days"`
	History   []string `json:"history"`
}

// Reward describes what a successful check-in earned
type Reward struct {
	Kind  string
	Count int
	Label string
}

// WeekDay is one cell of the Monday to Sunday check-in calendar
type WeekDay struct {
	Name    string
	Date    string
	Checked bool
	IsToday bool
}

var weekDayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type Engine struct {
	clock  clock.Clock
	kv     store.KeyValueStore
	record Record
}

// New loads the saved record or starts a blank one
func New(c clock.Clock, kv store.KeyValueStore) *Engine {
	e := &Engine{clock: c, kv: kv}
	if !store.Load(kv, store.KeyCheckin, &e.record) {
		e.record = Record{}
	}
	if e.record.History == nil {
		e.record.History = []string{}
	}
	return e
}

// CanCheckin reports whether today's check-in is still available
func (e *Engine) CanCheckin() bool {
	return e.record.LastDate != clock.Today(e.clock)
}

// Checkin records today's visit and returns the reward. A visit the day after
// the previous one extends the streak; any gap starts it over at 1.
func (e *Engine) Checkin() (Reward, error) {
	if !e.CanCheckin() {
		return Reward{}, ErrAlreadyCheckedIn
	}

	today := clock.Today(e.clock)
	if days, ok := clock.DaysBetween(e.record.LastDate, today); ok && days == 1 {
		e.record.Streak++
	} else {
		e.record.Streak = 1
	}
	e.record.LastDate = today
	e.record.TotalDays++
	e.record.History = append(e.record.History, today)
	e.save()

	reward := RewardFor(e.record.Streak)
	log.Printf("Checked in on %s. Streak is now %d", today, e.record.Streak)
	return reward, nil
}

// RewardFor returns the reward tier for a streak length
func RewardFor(streak int) Reward {
	switch {
	case streak > 0 && streak%7 == 0:
		return Reward{Kind: RewardFragments, Count: 3, Label: "7-day streak! +3 fragments"}
	case streak > 0 && streak%3 == 0:
		return Reward{Kind: RewardFragments, Count: 2, Label: "3-day streak! +2 fragments"}
	default:
		return Reward{Kind: RewardFragments, Count: 1, Label: "Checked in! +1 fragment"}
	}
}

func (e *Engine) Streak() int {
	return e.record.Streak
}

func (e *Engine) TotalDays() int {
	return e.record.TotalDays
}

// Record returns a copy of the saved state
func (e *Engine) Record() Record {
	r := e.record
	r.History = slices.Clone(e.record.History)
	return r
}

// WeekStatus returns the current Monday to Sunday week with check-in marks
func (e *Engine) WeekStatus() []WeekDay {
	now := clock.StartOfDay(e.clock.Now())
	offset := int(now.Weekday()+6) % 7 // Monday is 0
	monday := now.AddDate(0, 0, -offset)
	today := clock.Day(now)

	week := make([]WeekDay, 0, len(weekDayNames))
	for i, name := range weekDayNames {
		day := clock.Day(monday.AddDate(0, 0, i))
		week = append(week, WeekDay{
			Name:    name,
			Date:    day,
			Checked: slices.Contains(e.record.History, day),
			IsToday: day == today,
		})
	}
	return week
}

func (e *Engine) save() {
	store.Save(e.kv, store.KeyCheckin, e.record)
}
