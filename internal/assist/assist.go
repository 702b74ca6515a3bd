// Package assist is the local stand-in for friends helping each other's
// ponies. Receiving help grants a growth boost and is capped per day; giving
// help is not capped.
package assist

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"pony/internal/clock"
	"pony/internal/store"
)

const (
	DailyCap      = 3
	BoostDuration = time.Hour
	RecentLimit   = 10
)

var (
	ErrDailyCap      = errors.New("daily assist limit reached")
	ErrDuplicate     = errors.New("this friend already helped you today")
	ErrAlreadyHelped = errors.New("you already helped this friend today")
	ErrEmptyName     = errors.New("friend name is empty")
	ErrEmptyCode     = errors.New("assist code is empty")
	ErrOwnCode       = errors.New("that is your own assist code")
)

// Rand picks simulated friends. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Received is a friend who boosted this pony
type Received struct {
	Name string    `json:"name"`
	Time time.Time `json:"time"`
}

// Given is a code this player helped
type Given struct {
	Code string    `json:"code"`
	Time time.Time `json:"time"`
}

// Record is the persisted assist ledger
type Record struct {
	MyCode        string     `json:"my_code"`
	AssistedBy    []Received `json:"assisted_by"`
	IAssisted     []Given    `json:"i_assisted"`
	BoostEndTime  time.Time  `json:"boost_end_time"`
	TodayReceived int        `json:"today_received"`
	LastResetDate string     `json:"last_reset_date"`
}

var friendNames = []string{"Ming", "Hong", "Gang", "Mei", "Qiang", "Li", "Hua", "Fang"}

type Ledger struct {
	clock  clock.Clock
	kv     store.KeyValueStore
	record Record
}

// New loads the saved ledger, or creates one with a fresh assist code
func New(c clock.Clock, kv store.KeyValueStore) *Ledger {
	l := &Ledger{clock: c, kv: kv}
	if !store.Load(kv, store.KeyAssist, &l.record) || l.record.MyCode == "" {
		l.record = Record{
			MyCode:        NewCode(),
			LastResetDate: clock.Today(c),
		}
		l.save()
	}
	return l
}

// NewCode returns a new shareable assist code
func NewCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "P" + strings.ToUpper(hex[:10])
}

// NormalizeCode trims and upper-cases a typed-in code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (l *Ledger) MyCode() string {
	return l.record.MyCode
}

// rollover zeroes the received counter on the first call of a new day
func (l *Ledger) rollover() {
	today := clock.Today(l.clock)
	if l.record.LastResetDate == today {
		return
	}
	l.record.TodayReceived = 0
	l.record.LastResetDate = today
	l.save()
}

// ReceiveAssist records a friend's help and extends the boost by an hour
// from whichever is later, now or the current boost end. It returns the new
// boost end.
func (l *Ledger) ReceiveAssist(friendName string) (time.Time, error) {
	friendName = strings.TrimSpace(friendName)
	if friendName == "" {
		return time.Time{}, ErrEmptyName
	}

	l.rollover()
	if l.record.TodayReceived >= DailyCap {
		return time.Time{}, fmt.Errorf("%w (%d)", ErrDailyCap, DailyCap)
	}

	now := l.clock.Now()
	today := clock.Day(now)
	for _, a := range l.record.AssistedBy {
		if a.Name == friendName && clock.Day(a.Time) == today {
			return time.Time{}, ErrDuplicate
		}
	}

	l.record.AssistedBy = append(l.record.AssistedBy, Received{Name: friendName, Time: now})
	l.record.TodayReceived++
	start := now
	if l.record.BoostEndTime.After(start) {
		start = l.record.BoostEndTime
	}
	l.record.BoostEndTime = start.Add(BoostDuration)
	l.save()

	log.Printf("Received assist from %s. Boost until %s", friendName, l.record.BoostEndTime.Format(time.RFC3339))
	return l.record.BoostEndTime, nil
}

// AssistFriend records helping a friend's code. Each code can be helped once
// per day.
func (l *Ledger) AssistFriend(code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return ErrEmptyCode
	}
	if code == l.record.MyCode {
		return ErrOwnCode
	}

	now := l.clock.Now()
	today := clock.Day(now)
	for _, g := range l.record.IAssisted {
		if g.Code == code && clock.Day(g.Time) == today {
			return ErrAlreadyHelped
		}
	}

	l.record.IAssisted = append(l.record.IAssisted, Given{Code: code, Time: now})
	l.save()
	log.Printf("Assisted friend %s", code)
	return nil
}

// HasBoost reports whether a boost is running
func (l *Ledger) HasBoost() bool {
	return l.clock.Now().Before(l.record.BoostEndTime)
}

// BoostRemaining returns the time left on the boost, or zero
func (l *Ledger) BoostRemaining() time.Duration {
	return max(0, l.record.BoostEndTime.Sub(l.clock.Now()))
}

// BoostMinutes returns the boost left in whole minutes, rounded up
func (l *Ledger) BoostMinutes() int {
	remaining := l.BoostRemaining()
	return int((remaining + time.Minute - 1) / time.Minute)
}

// TodayCount returns how many assists were received today
func (l *Ledger) TodayCount() int {
	l.rollover()
	return l.record.TodayReceived
}

// Recent returns up to the last ten friends who helped, oldest first
func (l *Ledger) Recent() []Received {
	list := l.record.AssistedBy
	if len(list) > RecentLimit {
		list = list[len(list)-RecentLimit:]
	}
	return append([]Received(nil), list...)
}

// Given returns every code this player has helped
func (l *Ledger) Given() []Given {
	return append([]Given(nil), l.record.IAssisted...)
}

// ShareText is the invitation message shown with the assist code
func (l *Ledger) ShareText(userName string) string {
	if userName == "" {
		userName = "A friend"
	}
	return fmt.Sprintf("%s invited you to help their pony grow faster!\n\n"+
		"🐴 Raise a pony, lucky all year\n"+
		"👉 Help out and adopt a pony of your own\n\n"+
		"Assist code: %s", userName, l.record.MyCode)
}

// SimulateFriendAssist has a made-up friend help this pony. It returns the
// friend's name along with the outcome.
func (l *Ledger) SimulateFriendAssist(rng Rand) (string, time.Time, error) {
	name := friendNames[int(rng.Float64()*float64(len(friendNames)))%len(friendNames)]
	name = fmt.Sprintf("%s%d", name, int(rng.Float64()*100))
	end, err := l.ReceiveAssist(name)
	return name, end, err
}

func (l *Ledger) save() {
	store.Save(l.kv, store.KeyAssist, l.record)
}
