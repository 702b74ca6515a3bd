package game

import (
	"pony/internal/clock"
	"pony/internal/store"
)

// The first few interactions of a UTC day always earn a fragment; after
// that only some do.
const (
	GuaranteedDailyFragments = 3
	LateFragmentChance       = 0.2
	DailyFragmentReward      = 1
)

// dailyCounter is the pony_daily record
type dailyCounter struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TodayInteractions returns how many interactions were accepted today
func (s *Session) TodayInteractions() int {
	var d dailyCounter
	if !store.Load(s.kv, store.KeyDaily, &d) || d.Date != clock.Today(s.clock) {
		return 0
	}
	return d.Count
}

func (s *Session) rollDailyFragment() bool {
	if s.TodayInteractions() < GuaranteedDailyFragments {
		return true
	}
	return s.rng.Float64() < LateFragmentChance
}

func (s *Session) incrementDaily() {
	today := clock.Today(s.clock)
	d := dailyCounter{Date: today, Count: s.TodayInteractions() + 1}
	store.Save(s.kv, store.KeyDaily, d)
}
