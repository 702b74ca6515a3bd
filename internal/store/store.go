// Package store persists the game's named JSON blobs.
package store

// KeyValueStore holds one opaque blob per key.
type KeyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	// Remove deletes every given key in one operation. Missing keys are ignored.
	Remove(keys ...string) error
}

// Persisted record keys
const (
	KeyHorse        = "pony_horse"
	KeyUser         = "pony_user"
	KeyBag          = "pony_bag"
	KeyCheckin      = "pony_checkin"
	KeyFragments    = "pony_fragments"
	KeyAchievements = "pony_achievements"
	KeyAssist       = "pony_assist"
	KeyDaily        = "pony_daily"
	KeyCatchBest    = "pony_catch_best"
)

// AllKeys lists every record a full reset clears.
var AllKeys = []string{
	KeyHorse,
	KeyUser,
	KeyBag,
	KeyCheckin,
	KeyFragments,
	KeyAchievements,
	KeyAssist,
	KeyDaily,
	KeyCatchBest,
}
