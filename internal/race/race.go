// Package race is the Horse Race wager game. The player bets fragments on one
// of four horses and wins the bet times the horse's odds if it finishes first.
package race

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// Phase is where a race currently is
type Phase int

const (
	Betting Phase = iota
	Racing
	Finished
)

const (
	TrackLength = 280.0
	minSpeed    = 40.0
	speedSpread = 20.0
	// Each step scales a horse's base speed by 0.8 to 1.2
	minJitter    = 0.8
	jitterSpread = 0.4
)

// BetSteps are the fixed bet sizes. BetAll stakes the whole balance.
var BetSteps = []int{1, 5, 10, BetAll}

// BetAll is the bet step that means everything the player holds
const BetAll = -1

var (
	ErrNoHorse     = errors.New("pick a horse first")
	ErrNoBet       = errors.New("place a bet first")
	ErrBetTooHigh  = errors.New("not enough fragments for that bet")
	ErrNotBetting  = errors.New("the race has already started")
	ErrUnknownPick = errors.New("no such horse")
)

// Rand is the random source speeds are rolled with. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Horse is one runner
type Horse struct {
	Name     string
	Emoji    string
	Odds     float64
	Position float64

	baseSpeed float64
}

// Field is the line-up every race starts with
var Field = []Horse{
	{Name: "Lightning", Emoji: "🐴", Odds: 2.0},
	{Name: "Gale", Emoji: "🏇", Odds: 2.5},
	{Name: "Blaze", Emoji: "🦄", Odds: 3.0},
	{Name: "Thunder", Emoji: "🌟", Odds: 4.0},
}

// Race holds one betting round. Balance is the player's fragments as the
// race sees them: the bet leaves it at the start and winnings come back at
// the finish.
type Race struct {
	Phase   Phase
	Horses  []Horse
	Pick    int // -1 until a horse is chosen
	Bet     int
	Balance int
	Winner  int // -1 until someone crosses the line

	rng Rand
}

// New sets up a race for a player holding balance fragments
func New(balance int, rng Rand) *Race {
	r := &Race{Balance: balance, rng: rng}
	r.Reset()
	return r
}

// Reset lines the horses up again for another round, keeping the balance
func (r *Race) Reset() {
	r.Phase = Betting
	r.Horses = append([]Horse(nil), Field...)
	r.Pick = -1
	r.Bet = 0
	r.Winner = -1
}

// Choose picks the horse to back
func (r *Race) Choose(i int) error {
	if r.Phase != Betting {
		return ErrNotBetting
	}
	if i < 0 || i >= len(r.Horses) {
		return fmt.Errorf("%w: %d", ErrUnknownPick, i+1)
	}
	r.Pick = i
	return nil
}

// PlaceBet sets the stake. BetAll stakes the whole balance.
func (r *Race) PlaceBet(amount int) error {
	if r.Phase != Betting {
		return ErrNotBetting
	}
	if amount == BetAll {
		amount = r.Balance
	}
	if amount <= 0 {
		return ErrNoBet
	}
	if amount > r.Balance {
		return fmt.Errorf("%w: %d > %d", ErrBetTooHigh, amount, r.Balance)
	}
	r.Bet = amount
	return nil
}

// Start takes the bet from the balance and rolls each horse's base speed
func (r *Race) Start() error {
	switch {
	case r.Phase != Betting:
		return ErrNotBetting
	case r.Pick < 0:
		return ErrNoHorse
	case r.Bet <= 0:
		return ErrNoBet
	case r.Bet > r.Balance:
		return fmt.Errorf("%w: %d > %d", ErrBetTooHigh, r.Bet, r.Balance)
	}

	r.Balance -= r.Bet
	for i := range r.Horses {
		r.Horses[i].Position = 0
		r.Horses[i].baseSpeed = minSpeed + r.rng.Float64()*speedSpread
	}
	r.Phase = Racing
	log.Printf("Race started: %d fragments on %s", r.Bet, r.Horses[r.Pick].Name)
	return nil
}

// Step moves every horse dt seconds along the track. The first horse in
// field order to reach the line wins.
func (r *Race) Step(dt float64) {
	if r.Phase != Racing {
		return
	}

	for i := range r.Horses {
		h := &r.Horses[i]
		speed := h.baseSpeed * (minJitter + r.rng.Float64()*jitterSpread)
		h.Position = math.Min(h.Position+speed*dt, TrackLength)
		if h.Position >= TrackLength && r.Winner < 0 {
			r.Winner = i
		}
	}

	if r.Winner >= 0 {
		r.Phase = Finished
		r.Balance += r.Payout()
		log.Printf("Race won by %s. Balance is now %d", r.Horses[r.Winner].Name, r.Balance)
	}
}

// Won reports whether the backed horse finished first
func (r *Race) Won() bool {
	return r.Phase == Finished && r.Winner == r.Pick
}

// Payout is what a finished race pays back: the bet times the winner's odds,
// rounded down, or nothing when another horse won.
func (r *Race) Payout() int {
	if !r.Won() {
		return 0
	}
	return int(math.Floor(float64(r.Bet) * r.Horses[r.Winner].Odds))
}

// Progress is how far along the track a horse is, from 0 to 1
func (h Horse) Progress() float64 {
	return h.Position / TrackLength
}
