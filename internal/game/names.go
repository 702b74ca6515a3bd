package game

import "fmt"

// Personality flavours the generated pony name
type Personality string

const (
	Active Personality = "active"
	Calm   Personality = "calm"
	Social Personality = "social"
	Quiet  Personality = "quiet"
)

// Personalities in menu order
var Personalities = []Personality{Active, Calm, Social, Quiet}

var namePrefixes = map[Personality][]string{
	Active: {"Dash", "Gallop", "Gale", "Bolt"},
	Calm:   {"Easy", "Still", "Mellow", "Serene"},
	Social: {"Jolly", "Sunny", "Bright", "Lively"},
	Quiet:  {"Hush", "Willow", "Misty", "Velvet"},
}

var nameSuffixes = []string{"Pony", "Hoof", "Mane", "Star"}

// GenerateName builds a pony name from a personality prefix and a suffix
func GenerateName(p Personality, rng Rand) string {
	prefixes, ok := namePrefixes[p]
	if !ok {
		prefixes = namePrefixes[Active]
	}
	return prefixes[pick(rng, len(prefixes))] + " " + nameSuffixes[pick(rng, len(nameSuffixes))]
}

// DefaultOwnerName is used when the player adopts without giving a name
func DefaultOwnerName(rng Rand) string {
	return fmt.Sprintf("Pony Keeper %d", 1000+pick(rng, 9000))
}

func pick(rng Rand, n int) int {
	return min(int(rng.Float64()*float64(n)), n-1)
}
