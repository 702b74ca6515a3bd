// Package interaction gates pats, grooms and feeds behind per-action
// cooldowns and the pony's hunger.
package interaction

import (
	"errors"
	"fmt"
	"math"
	"time"

	"pony/internal/clock"
)

// Action is one of the things the player can do to the pony
type Action string

const (
	Pat   Action = "pat"
	Groom Action = "groom"
	Feed  Action = "feed"
)

// Actions lists every known action in menu order
var Actions = []Action{Pat, Groom, Feed}

// Cooldown durations
const (
	PatCooldown   = 10 * time.Second
	GroomCooldown = 10 * time.Second
	FeedCooldown  = 30 * time.Second

	// MinHungerToStroke is the hunger pats and grooms need
	MinHungerToStroke = 30
)

var (
	ErrCooldown      = errors.New("still cooling down")
	ErrTooHungry     = errors.New("your pony is too hungry, feed it first")
	ErrUnknownAction = errors.New("unknown action")
)

var cooldowns = map[Action]time.Duration{
	Pat:   PatCooldown,
	Groom: GroomCooldown,
	Feed:  FeedCooldown,
}

// Tracker remembers when each action was last accepted. Cooldowns are not
// persisted: a restart clears them.
type Tracker struct {
	clock clock.Clock
	last  map[Action]time.Time
}

func NewTracker(c clock.Clock) *Tracker {
	return &Tracker{clock: c, last: make(map[Action]time.Time)}
}

// CanInteract reports whether the action's cooldown has run out. Unknown
// actions are never allowed.
func (t *Tracker) CanInteract(a Action) bool {
	if _, ok := cooldowns[a]; !ok {
		return false
	}
	return t.Remaining(a) == 0
}

// Remaining returns how long until the action is allowed again. It is zero
// for actions never used and for unknown actions.
func (t *Tracker) Remaining(a Action) time.Duration {
	d, ok := cooldowns[a]
	if !ok {
		return 0
	}
	last, ok := t.last[a]
	if !ok {
		return 0
	}
	return max(0, d-t.clock.Since(last))
}

// Record stamps now as the action's last use. Call it only for accepted actions.
func (t *Tracker) Record(a Action) {
	if _, ok := cooldowns[a]; !ok {
		return
	}
	t.last[a] = t.clock.Now()
}

// Check returns ErrCooldown wrapped with the seconds left, or
// ErrUnknownAction, or nil if the action may go ahead.
func (t *Tracker) Check(a Action) error {
	if _, ok := cooldowns[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
	if t.CanInteract(a) {
		return nil
	}
	return fmt.Errorf("%w: wait %d more seconds", ErrCooldown, RemainingSeconds(t.Remaining(a)))
}

// RemainingSeconds rounds a remaining cooldown up to whole seconds for display
func RemainingSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

// Gate applies the hunger policy. Feeding is always allowed.
func Gate(a Action, hunger int) error {
	switch a {
	case Feed:
		return nil
	case Pat, Groom:
		if hunger < MinHungerToStroke {
			return ErrTooHungry
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
}
