// Package game wires the pony, cooldowns, check-ins, decorations,
// fragments, achievements and assists into one play session. It is the only
// place that composes the engines; the UI talks to nothing else.
package game

import (
	"errors"
	"fmt"
	"log"

	"pony/internal/achievement"
	"pony/internal/assist"
	"pony/internal/checkin"
	"pony/internal/clock"
	"pony/internal/decoration"
	"pony/internal/fragment"
	"pony/internal/interaction"
	"pony/internal/pet"
	"pony/internal/store"
)

var (
	ErrNotAdopted    = errors.New("no pony adopted yet")
	ErrNotOwned      = errors.New("decoration not in your bag")
	ErrAlreadyOwned  = errors.New("you already own that decoration")
	ErrUnknownChoice = errors.New("unknown fortune choice")
)

// Rand is the session's random source. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Profile is the adopting player, stored at pony_user
type Profile struct {
	Name    string   `json:"name"`
	Fortune *Fortune `json:"fortune,omitempty"`
}

// Session holds every engine for one player
type Session struct {
	clock clock.Clock
	kv    store.KeyValueStore
	rng   Rand

	pony         *pet.Engine
	profile      Profile
	tracker      *interaction.Tracker
	checkin      *checkin.Engine
	decorations  *decoration.Economy
	fragments    *fragment.Ledger
	achievements *achievement.Engine
	assist       *assist.Ledger
	phrases      *PhraseEngine
}

// Open loads every saved record. A missing or unreadable pony leaves the
// session waiting for Adopt.
func Open(c clock.Clock, kv store.KeyValueStore, rng Rand) *Session {
	s := &Session{clock: c, kv: kv, rng: rng}
	s.load()
	return s
}

func (s *Session) load() {
	s.pony = nil
	if e, ok := pet.Load(s.clock, s.kv); ok {
		s.pony = e
	}
	if !store.Load(s.kv, store.KeyUser, &s.profile) {
		s.profile = Profile{}
	}
	s.tracker = interaction.NewTracker(s.clock)
	s.checkin = checkin.New(s.clock, s.kv)
	s.decorations = decoration.New(s.kv, s.rng)
	s.fragments = fragment.NewLedger(s.kv)
	s.achievements = achievement.New(s.kv)
	s.assist = assist.New(s.clock, s.kv)
	s.phrases = NewPhraseEngine(s.rng)
}

// Adopted reports whether there is a pony to play with
func (s *Session) Adopted() bool {
	return s.pony != nil
}

// Adopt starts a new pony. An empty owner name gets a generated one; an
// empty pony name gets the default.
func (s *Session) Adopt(ownerName, ponyName string) pet.Pet {
	return s.adopt(Profile{Name: ownerName}, ponyName)
}

// AdoptWithFortune adopts and keeps the adoption fortune on the profile
func (s *Session) AdoptWithFortune(ownerName, ponyName string, f Fortune) pet.Pet {
	return s.adopt(Profile{Name: ownerName, Fortune: &f}, ponyName)
}

func (s *Session) adopt(profile Profile, ponyName string) pet.Pet {
	if profile.Name == "" {
		profile.Name = DefaultOwnerName(s.rng)
	}
	s.profile = profile
	store.Save(s.kv, store.KeyUser, s.profile)
	s.pony = pet.Adopt(s.clock, s.kv, ponyName)
	return s.pony.Pet()
}

// Pet returns a copy of the pony. It is the zero value before adoption.
func (s *Session) Pet() pet.Pet {
	if s.pony == nil {
		return pet.Pet{}
	}
	return s.pony.Pet()
}

func (s *Session) Profile() Profile { return s.profile }
func (s *Session) Tracker() *interaction.Tracker { return s.tracker }
func (s *Session) Checkins() *checkin.Engine { return s.checkin }
func (s *Session) Decorations() *decoration.Economy { return s.decorations }
func (s *Session) Fragments() *fragment.Ledger { return s.fragments }
func (s *Session) Achievements() *achievement.Engine { return s.achievements }
func (s *Session) Assists() *assist.Ledger { return s.assist }
func (s *Session) Clock() clock.Clock { return s.clock }

// SuggestName generates a pony name for the adoption screen
func (s *Session) SuggestName(p Personality) string {
	return GenerateName(p, s.rng)
}

// Refresh charges decay for each whole hour the game has been left open
// without activity. Partial hours are kept for the next refresh.
func (s *Session) Refresh() {
	if s.pony != nil {
		s.pony.DecayWhileOpen()
	}
}

// Stats builds the achievement snapshot from every engine
func (s *Session) Stats() achievement.Stats {
	p := s.Pet()
	return achievement.Stats{
		TotalInteract:   p.TotalInteractCount,
		TotalFeed:       p.TotalFeedCount,
		Streak:          s.checkin.Streak(),
		TotalCheckin:    s.checkin.TotalDays(),
		DecoCount:       len(s.decorations.BagIDs()),
		BodyStage:       p.BodyStage,
		AppearanceStage: p.AppearanceStage,
		Hunger:          p.Hunger,
		Happiness:       p.Happiness,
	}
}

// CheckAchievements unlocks whatever the current snapshot satisfies
func (s *Session) CheckAchievements() []achievement.Achievement {
	if s.pony == nil {
		return nil
	}
	return s.achievements.Check(s.Stats())
}

// DoCheckin claims today's check-in and credits its fragments
func (s *Session) DoCheckin() (checkin.Reward, []achievement.Achievement, error) {
	reward, err := s.checkin.Checkin()
	if err != nil {
		return checkin.Reward{}, nil, err
	}
	if err := s.fragments.Add(reward.Count); err != nil {
		return reward, nil, err
	}
	return reward, s.CheckAchievements(), nil
}

// Craft spends fragments on a decoration and puts it in the bag
func (s *Session) Craft(id string) (decoration.Decoration, []achievement.Achievement, error) {
	if s.decorations.Owns(id) {
		return decoration.Decoration{}, nil, fmt.Errorf("%w: %s", ErrAlreadyOwned, id)
	}
	if _, err := s.fragments.Craft(id); err != nil {
		return decoration.Decoration{}, nil, err
	}

	s.decorations.AddToBag(id)
	d, _ := decoration.Info(id)
	return d, s.CheckAchievements(), nil
}

// ToggleEquip puts an owned decoration on, or takes it off if worn. It
// reports whether the decoration is now equipped.
func (s *Session) ToggleEquip(id string) (bool, error) {
	if s.pony == nil {
		return false, ErrNotAdopted
	}
	if !s.decorations.Owns(id) {
		return false, fmt.Errorf("%w: %s", ErrNotOwned, id)
	}

	if s.pony.Pet().IsEquipped(id) {
		s.pony.Unequip(id)
		return false, nil
	}
	s.pony.Equip(id)
	return true, nil
}

// Reset wipes every saved record in one store call and starts over
func (s *Session) Reset() error {
	if err := s.kv.Remove(store.AllKeys...); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	log.Printf("Reset all progress")
	s.load()
	return nil
}
