// Package achievement unlocks milestones from a snapshot of the player's
// progress.
package achievement

import (
	"log"
	"slices"

	"pony/internal/decoration"
	"pony/internal/pet"
	"pony/internal/store"
)

// Stats is the progress snapshot achievements are judged against
type Stats struct {
	TotalInteract   int
	TotalFeed       int
	Streak          int
	TotalCheckin    int
	DecoCount       int
	BodyStage       pet.BodyStage
	AppearanceStage pet.AppearanceStage
	Hunger          int
	Happiness       int
}

// Achievement is one catalog entry
type Achievement struct {
	ID    string
	Name  string
	Desc  string
	Icon  string
	check func(Stats) bool
}

// Met reports whether the snapshot satisfies the achievement
func (a Achievement) Met(s Stats) bool {
	return a.check(s)
}

// Status is an achievement with its unlocked flag, for display
type Status struct {
	Achievement
	Unlocked bool
}

// Catalog is evaluated in this order and newly unlocked achievements are
// reported in this order.
var Catalog = []Achievement{
	{ID: "first_pat", Name: "First Touch", Desc: "Pat your pony for the first time", Icon: "🤚",
		check: func(s Stats) bool { return s.TotalInteract >= 1 }},
	{ID: "interact_10", Name: "Close Friends", Desc: "Interact 10 times", Icon: "🤝",
		check: func(s Stats) bool { return s.TotalInteract >= 10 }},
	{ID: "interact_50", Name: "Inseparable", Desc: "Interact 50 times", Icon: "💕",
		check: func(s Stats) bool { return s.TotalInteract >= 50 }},
	{ID: "interact_100", Name: "Soulmates", Desc: "Interact 100 times", Icon: "💖",
		check: func(s Stats) bool { return s.TotalInteract >= 100 }},

	{ID: "first_feed", Name: "First Meal", Desc: "Feed your pony for the first time", Icon: "🌾",
		check: func(s Stats) bool { return s.TotalFeed >= 1 }},
	{ID: "feed_10", Name: "Caring Owner", Desc: "Feed 10 times", Icon: "🍎",
		check: func(s Stats) bool { return s.TotalFeed >= 10 }},
	{ID: "feed_50", Name: "Head Chef", Desc: "Feed 50 times", Icon: "🍽️",
		check: func(s Stats) bool { return s.TotalFeed >= 50 }},

	{ID: "checkin_3", Name: "Three-Day Promise", Desc: "Check in 3 days in a row", Icon: "📅",
		check: func(s Stats) bool { return s.Streak >= 3 }},
	{ID: "checkin_7", Name: "A Week Together", Desc: "Check in 7 days in a row", Icon: "🗓️",
		check: func(s Stats) bool { return s.Streak >= 7 }},
	{ID: "checkin_30", Name: "Monthly Guardian", Desc: "Check in on 30 days", Icon: "🏆",
		check: func(s Stats) bool { return s.TotalCheckin >= 30 }},

	{ID: "deco_1", Name: "First Find", Desc: "Get your first decoration", Icon: "🎁",
		check: func(s Stats) bool { return s.DecoCount >= 1 }},
	{ID: "deco_5", Name: "Little Collector", Desc: "Collect 5 decorations", Icon: "🎒",
		check: func(s Stats) bool { return s.DecoCount >= 5 }},
	{ID: "deco_all", Name: "Decoration Master", Desc: "Collect every decoration", Icon: "👑",
		check: func(s Stats) bool { return s.DecoCount >= len(decoration.Catalog) }},

	{ID: "growth_body", Name: "New Shape", Desc: "Your pony's body changes for the first time", Icon: "💪",
		check: func(s Stats) bool { return s.BodyStage != "" && s.BodyStage != pet.BodyNormal }},
	{ID: "growth_appear", Name: "New Look", Desc: "Your pony's coat changes for the first time", Icon: "✨",
		check: func(s Stats) bool { return s.AppearanceStage != "" && s.AppearanceStage != pet.AppearanceBase }},
	{ID: "growth_max", Name: "Perfect Form", Desc: "Reach the final coat", Icon: "🌟",
		check: func(s Stats) bool { return s.AppearanceStage == pet.AppearanceMarked }},

	{ID: "full_status", Name: "Overflowing Joy", Desc: "Hunger and happiness both at 100", Icon: "🥰",
		check: func(s Stats) bool { return s.Hunger >= pet.MaxStat && s.Happiness >= pet.MaxStat }},
}

// Engine tracks which achievements are unlocked
type Engine struct {
	kv       store.KeyValueStore
	unlocked []string
}

func New(kv store.KeyValueStore) *Engine {
	e := &Engine{kv: kv}
	if !store.Load(kv, store.KeyAchievements, &e.unlocked) || e.unlocked == nil {
		e.unlocked = []string{}
	}
	return e
}

// Check unlocks every achievement the snapshot newly satisfies and returns
// them in catalog order. Already unlocked achievements are never returned
// again.
func (e *Engine) Check(s Stats) []Achievement {
	var fresh []Achievement
	for _, a := range Catalog {
		if slices.Contains(e.unlocked, a.ID) || !a.Met(s) {
			continue
		}
		e.unlocked = append(e.unlocked, a.ID)
		fresh = append(fresh, a)
		log.Printf("Achievement unlocked: %s", a.ID)
	}

	if len(fresh) > 0 {
		store.Save(e.kv, store.KeyAchievements, e.unlocked)
	}
	return fresh
}

// IsUnlocked reports whether an achievement has been earned
func (e *Engine) IsUnlocked(id string) bool {
	return slices.Contains(e.unlocked, id)
}

// All returns the catalog with unlocked flags
func (e *Engine) All() []Status {
	all := make([]Status, 0, len(Catalog))
	for _, a := range Catalog {
		all = append(all, Status{Achievement: a, Unlocked: e.IsUnlocked(a.ID)})
	}
	return all
}

// Unlocked returns unlocked ids in the order they were earned
func (e *Engine) Unlocked() []string {
	return slices.Clone(e.unlocked)
}

func (e *Engine) UnlockedCount() int {
	return len(e.unlocked)
}

func (e *Engine) TotalCount() int {
	return len(Catalog)
}
