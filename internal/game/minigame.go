package game

import (
	"log"

	"pony/internal/achievement"
	"pony/internal/store"
)

// MiniGameHappiness is the happiness any finished mini-game gives
const MiniGameHappiness = 3

// MiniGameResult is what a finished mini-game reports
type MiniGameResult struct {
	Score     int
	Fragments int
}

// CompleteMiniGame credits a mini-game's fragments and cheers the pony up
func (s *Session) CompleteMiniGame(r MiniGameResult) []achievement.Achievement {
	if r.Fragments > 0 {
		_ = s.fragments.Add(r.Fragments)
	}
	if s.pony != nil {
		s.pony.Adjust(0, MiniGameHappiness)
	}
	log.Printf("Mini-game finished with score %d (+%d fragments)", r.Score, r.Fragments)
	return s.CheckAchievements()
}

// SettleWager replaces the fragment balance with the one a wager game ended on
func (s *Session) SettleWager(balance int) ([]achievement.Achievement, error) {
	if err := s.fragments.Set(balance); err != nil {
		return nil, err
	}
	return s.CheckAchievements(), nil
}

// CatchBest returns the best catch score so far
func (s *Session) CatchBest() int {
	var best int
	if !store.Load(s.kv, store.KeyCatchBest, &best) {
		return 0
	}
	return best
}

// RecordCatchScore saves score if it beats the best. It reports whether it did.
func (s *Session) RecordCatchScore(score int) bool {
	if score <= s.CatchBest() {
		return false
	}
	store.Save(s.kv, store.KeyCatchBest, score)
	return true
}
