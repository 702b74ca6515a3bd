package pet

import (
	"log"
	"math"
	"slices"
	"time"
)

// Pet represents the pony's state
type Pet struct {
	Name               string          `json:"name"`
	Hunger             int             `json:"hunger"`
	Happiness          int             `json:"happiness"`
	TotalFeedCount     int             `json:"total_feed_count"`
	TotalInteractCount int             `json:"total_interact_count"`
	BodyStage          BodyStage       `json:"body_stage"`
	AppearanceStage    AppearanceStage `json:"appearance_stage"`
	AdoptedAt          time.Time       `json:"adopted_at"`
	LastActiveTime     time.Time       `json:"last_active_time"`
	Decorations        []string        `json:"decorations"` // equipped decoration ids
}

// ActionResult reports what a feed, pat or groom actually changed
type ActionResult struct {
	HungerChange    int
	HappinessChange int
	Growth          []GrowthEvent
}

// NewPet creates a freshly adopted pony
func NewPet(name string, now time.Time) Pet {
	if name == "" {
		name = DefaultPetName
	}
	return Pet{
		Name:            name,
		Hunger:          InitialHunger,
		Happiness:       InitialHappiness,
		BodyStage:       BodyNormal,
		AppearanceStage: AppearanceBase,
		AdoptedAt:       now,
		LastActiveTime:  now,
		Decorations:     []string{},
	}
}

// TotalActions is the combined counter appearance growth is derived from
func (p Pet) TotalActions() int {
	return p.TotalFeedCount + p.TotalInteractCount
}

// ApplyDecay lowers the gauges for the time spent away since LastActiveTime.
// Less than half an hour away costs nothing. LastActiveTime is always moved
// to now.
func (p *Pet) ApplyDecay(now time.Time) {
	if p.LastActiveTime.IsZero() {
		p.LastActiveTime = now
		return
	}

	elapsed := now.Sub(p.LastActiveTime)
	if elapsed >= MinDecayElapsed {
		hours := elapsed.Hours()
		hungerLoss := int(math.Floor(hours * HungerDecreaseRate))
		happinessLoss := int(math.Floor(hours * HappinessDecreaseRate))
		p.Hunger = clampStat(p.Hunger - hungerLoss)
		p.Happiness = clampStat(p.Happiness - happinessLoss)
		log.Printf("Applied %.1fh of decay. Hunger is now %d, Happiness is now %d", hours, p.Hunger, p.Happiness)
	}
	p.LastActiveTime = now
}

// DecayWholeHours charges decay for every full hour since LastActiveTime
// and moves LastActiveTime forward by exactly those hours, so the leftover
// minutes carry into the next call. It reports whether anything was charged.
func (p *Pet) DecayWholeHours(now time.Time) bool {
	if p.LastActiveTime.IsZero() {
		p.LastActiveTime = now
		return false
	}

	hours := int(now.Sub(p.LastActiveTime) / time.Hour)
	if hours < 1 {
		return false
	}
	p.Hunger = clampStat(p.Hunger - hours*HungerDecreaseRate)
	p.Happiness = clampStat(p.Happiness - hours*HappinessDecreaseRate)
	p.LastActiveTime = p.LastActiveTime.Add(time.Duration(hours) * time.Hour)
	log.Printf("Applied %dh of decay while open. Hunger is now %d, Happiness is now %d", hours, p.Hunger, p.Happiness)
	return true
}

// Feed fills hunger and cheers the pony up a little
func (p *Pet) Feed() ActionResult {
	oldHunger, oldHappiness := p.Hunger, p.Happiness
	p.Hunger = clampStat(p.Hunger + FeedHungerIncrease)
	p.Happiness = clampStat(p.Happiness + FeedHappinessIncrease)
	p.TotalFeedCount++

	return ActionResult{
		HungerChange:    p.Hunger - oldHunger,
		HappinessChange: p.Happiness - oldHappiness,
		Growth:          p.CheckGrowth(),
	}
}

// Pat strokes the pony
func (p *Pet) Pat() ActionResult {
	return p.stroke()
}

// Groom brushes the pony. It has the same effect as a pat.
func (p *Pet) Groom() ActionResult {
	return p.stroke()
}

func (p *Pet) stroke() ActionResult {
	oldHappiness := p.Happiness
	p.Happiness = clampStat(p.Happiness + StrokeHappinessIncrease)
	p.TotalInteractCount++

	return ActionResult{
		HappinessChange: p.Happiness - oldHappiness,
		Growth:          p.CheckGrowth(),
	}
}

// Adjust shifts both gauges by the given amounts, clamped to range.
func (p *Pet) Adjust(hunger, happiness int) {
	p.Hunger = clampStat(p.Hunger + hunger)
	p.Happiness = clampStat(p.Happiness + happiness)
}

// CheckGrowth re-derives both stages from the counters and returns one event
// per dimension that changed.
func (p *Pet) CheckGrowth() []GrowthEvent {
	var events []GrowthEvent

	newBody := DeriveBody(p.TotalFeedCount, p.TotalInteractCount)
	if newBody != p.BodyStage {
		events = append(events, GrowthEvent{
			Dimension: DimensionBody,
			Stage:     string(newBody),
			Label:     BodyLabel(newBody),
		})
		p.BodyStage = newBody
		log.Printf("Pony body changed to %s", newBody)
	}

	newAppearance := DeriveAppearance(p.TotalActions())
	if newAppearance != p.AppearanceStage {
		events = append(events, GrowthEvent{
			Dimension: DimensionAppearance,
			Stage:     string(newAppearance),
			Label:     AppearanceLabel(newAppearance),
		})
		p.AppearanceStage = newAppearance
		log.Printf("Pony appearance evolved to %s", newAppearance)
	}

	return events
}

// GetMood returns the mood the presentation layer should show
func (p Pet) GetMood() Mood {
	if p.Hunger < LowStatThreshold || p.Happiness < LowStatThreshold {
		return MoodSad
	}
	if p.Hunger >= HighStatThreshold && p.Happiness >= HighStatThreshold {
		return MoodExcited
	}
	return MoodNormal
}

// GetGrowthProgress returns how far the pony is from its next appearance
func (p Pet) GetGrowthProgress() GrowthProgress {
	return ProgressFor(p.TotalActions())
}

// IsEquipped reports whether a decoration is currently worn
func (p Pet) IsEquipped(id string) bool {
	return slices.Contains(p.Decorations, id)
}

// EquipDecoration puts a decoration on. It reports whether anything changed.
// Ownership is not checked here.
func (p *Pet) EquipDecoration(id string) bool {
	if p.IsEquipped(id) {
		return false
	}
	p.Decorations = append(p.Decorations, id)
	return true
}

// UnequipDecoration takes a decoration off. It reports whether anything changed.
func (p *Pet) UnequipDecoration(id string) bool {
	if !p.IsEquipped(id) {
		return false
	}
	p.Decorations = slices.DeleteFunc(p.Decorations, func(d string) bool { return d == id })
	return true
}

// normalize repairs a loaded record: gauges back in range and stages
// re-derived from the counters.
func (p *Pet) normalize() {
	p.Hunger = clampStat(p.Hunger)
	p.Happiness = clampStat(p.Happiness)
	p.TotalFeedCount = max(p.TotalFeedCount, 0)
	p.TotalInteractCount = max(p.TotalInteractCount, 0)
	p.BodyStage = DeriveBody(p.TotalFeedCount, p.TotalInteractCount)
	p.AppearanceStage = DeriveAppearance(p.TotalActions())
	if p.Decorations == nil {
		p.Decorations = []string{}
	}
	if p.Name == "" {
		p.Name = DefaultPetName
	}
}

func clampStat(v int) int {
	return max(MinStat, min(v, MaxStat))
}
