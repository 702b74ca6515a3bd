package pet

import "time"

// Game constants
const (
	DefaultPetName    = "Pony"
	MaxStat           = 100
	MinStat           = 0
	LowStatThreshold  = 30 // Below this the pony is sad and refuses pats
	HighStatThreshold = 80 // Both gauges at or above this: excited

	InitialHunger    = 50
	InitialHappiness = 50

	// Offline decay (per hour)
	HungerDecreaseRate    = 2
	HappinessDecreaseRate = 1
	MinDecayElapsed       = 30 * time.Minute

	// Action effects
	FeedHungerIncrease      = 10
	FeedHappinessIncrease   = 2
	StrokeHappinessIncrease = 5 // pat and groom

	// Body stage requirements
	BalancedFeedRequirement     = 25
	BalancedInteractRequirement = 25
	SturdyFeedRequirement       = 30
	SlimInteractRequirement     = 30
)

// Mood is the presentation mood derived from the gauges.
type Mood string

const (
	MoodSad     Mood = "sad"
	MoodNormal  Mood = "normal"
	MoodExcited Mood = "excited"
)

// Status emojis
const (
	StatusEmojiExcited = "🥰"
	StatusEmojiHappy   = "🐴"
	StatusEmojiHungry  = "😿"
	StatusEmojiSad     = "😢"
)
