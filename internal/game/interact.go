package game

import (
	"pony/internal/achievement"
	"pony/internal/decoration"
	"pony/internal/interaction"
	"pony/internal/pet"
)

// Extra gauge points while an assist boost is running
const (
	BoostFeedHunger      = 5
	BoostFeedHappiness   = 1
	BoostStrokeHappiness = 2
)

// Outcome is everything one accepted interaction produced
type Outcome struct {
	Action       interaction.Action
	Result       pet.ActionResult
	Boosted      bool
	Phrase       string
	Drop         *decoration.Decoration
	Fragments    int
	Achievements []achievement.Achievement
}

// Interact runs one pat, groom or feed. Refusals (cooldown, too hungry,
// unknown action) leave every engine untouched.
func (s *Session) Interact(a interaction.Action) (Outcome, error) {
	if s.pony == nil {
		return Outcome{}, ErrNotAdopted
	}
	if err := s.tracker.Check(a); err != nil {
		return Outcome{}, err
	}
	if err := interaction.Gate(a, s.pony.Pet().Hunger); err != nil {
		return Outcome{}, err
	}

	out := Outcome{Action: a}
	switch a {
	case interaction.Feed:
		out.Result = s.pony.Feed()
	case interaction.Pat:
		out.Result = s.pony.Pat()
	case interaction.Groom:
		out.Result = s.pony.Groom()
	}

	if s.assist.HasBoost() {
		out.Boosted = true
		if a == interaction.Feed {
			s.pony.Adjust(BoostFeedHunger, BoostFeedHappiness)
		} else {
			s.pony.Adjust(0, BoostStrokeHappiness)
		}
	}

	s.tracker.Record(a)
	out.Phrase = s.phrases.Next(a)

	p := s.pony.Pet()
	if d, ok := s.decorations.TryDrop(p.Hunger, p.Happiness); ok {
		out.Drop = &d
	}

	if s.rollDailyFragment() {
		out.Fragments = DailyFragmentReward
		_ = s.fragments.Add(DailyFragmentReward)
	}

	out.Achievements = s.CheckAchievements()
	s.incrementDaily()
	return out, nil
}
