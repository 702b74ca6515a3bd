package game

import "pony/internal/pet"

// StatusView is everything the status card shows
type StatusView struct {
	Owner          string
	Pet            pet.Pet
	Mood           pet.Mood
	Progress       pet.GrowthProgress
	Streak         int
	TotalDays      int
	Fragments      int
	Decorations    int
	Unlocked       int
	Achievements   int
	BoostMinutes   int
	TodayInteracts int
	CatchBest      int
	Fortune        *Fortune
}

// Status collects a StatusView from every engine
func (s *Session) Status() StatusView {
	p := s.Pet()
	return StatusView{
		Owner:          s.profile.Name,
		Pet:            p,
		Mood:           p.GetMood(),
		Progress:       p.GetGrowthProgress(),
		Streak:         s.checkin.Streak(),
		TotalDays:      s.checkin.TotalDays(),
		Fragments:      s.fragments.Count(),
		Decorations:    len(s.decorations.BagIDs()),
		Unlocked:       s.achievements.UnlockedCount(),
		Achievements:   s.achievements.TotalCount(),
		BoostMinutes:   s.assist.BoostMinutes(),
		TodayInteracts: s.TodayInteractions(),
		CatchBest:      s.CatchBest(),
		Fortune:        s.profile.Fortune,
	}
}
