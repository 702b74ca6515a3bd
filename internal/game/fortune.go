package game

import (
	"fmt"
	"slices"
)

// Zodiac is a Chinese zodiac sign offered on the adoption screen
type Zodiac struct {
	ID       string
	Name     string
	Emoji    string
	Look     string // how a pony of this sign carries itself
	Blessing string
}

// LuckyColor is a favourite colour offered on the adoption screen
type LuckyColor struct {
	ID    string
	Name  string
	Emoji string
	Trait string
}

var Zodiacs = []Zodiac{
	{"rat", "Rat", "🐭", "quick-witted", "Rat and horse, clever and brave"},
	{"ox", "Ox", "🐮", "steady", "Ox and horse, hard work pays"},
	{"tiger", "Tiger", "🐯", "bold", "Tiger and horse, nothing stands in your way"},
	{"rabbit", "Rabbit", "🐰", "graceful", "Rabbit and horse, a warm and happy home"},
	{"dragon", "Dragon", "🐲", "splendid", "Dragon and horse, soaring high"},
	{"snake", "Snake", "🐍", "mysterious", "Snake and horse, wisdom beyond compare"},
	{"horse", "Horse", "🐴", "dashing", "Your own year, luck gallops in"},
	{"goat", "Goat", "🐑", "gentle", "Goat and horse, peace and good fortune"},
	{"monkey", "Monkey", "🐵", "playful", "Monkey and horse, bright and lively"},
	{"rooster", "Rooster", "🐔", "radiant", "Rooster and horse, a shining road ahead"},
	{"dog", "Dog", "🐶", "loyal", "Dog and horse, faithful friends"},
	{"pig", "Pig", "🐷", "cheerful", "Pig and horse, plenty for everyone"},
}

var LuckyColors = []LuckyColor{
	{"red", "Red", "❤️", "passionate"},
	{"blue", "Blue", "💙", "composed"},
	{"green", "Green", "💚", "kind"},
	{"yellow", "Yellow", "💛", "lively"},
	{"purple", "Purple", "💜", "mysterious"},
	{"pink", "Pink", "🩷", "romantic"},
}

var personalityTraits = map[Personality]string{
	Active: "always on the move",
	Calm:   "easy-going",
	Social: "outgoing",
	Quiet:  "thoughtful",
}

var fortuneLines = struct {
	career, wealth, love, health []string
}{
	career: []string{
		"Your career is flying, with mentors at your side!",
		"Work goes smoothly, a raise is on its way!",
		"Slow and steady climbing, keep at it!",
		"You will feel right at home at work and go far!",
		"A calm year at work, keep your feet on the ground!",
	},
	wealth: []string{
		"Money flows in from every direction!",
		"Wealth rolls in, your investments pay off!",
		"Steady finances, earn more and spend wisely!",
		"A windfall may be around the corner!",
		"A quiet year for money, spend with care!",
	},
	love: []string{
		"Romance is in the air, true love is near!",
		"Sweet times with the one you love!",
		"Steady love, treasure who is beside you!",
		"Single? Take the first step this year!",
		"Love needs tending, put your heart into it!",
	},
	health: []string{
		"Healthy and full of energy!",
		"Good health, balance work and rest!",
		"Growing stronger, a great year to get active!",
		"Stable health, keep regular hours!",
		"Look after yourself, prevention first!",
	},
}

// Fortune is the Year of the Horse reading a player gets when adopting.
// The same answers always give the same reading.
type Fortune struct {
	Zodiac      string      `json:"zodiac"`
	Color       string      `json:"color"`
	Personality Personality `json:"personality"`
	Career      string      `json:"career"`
	Wealth      string      `json:"wealth"`
	Love        string      `json:"love"`
	Health      string      `json:"health"`
	LuckyNumber int         `json:"lucky_number"`
	Score       int         `json:"score"`
}

// ReadFortune builds the reading for a zodiac id, colour id and personality
func ReadFortune(zodiac, color string, p Personality) (Fortune, error) {
	if _, ok := findZodiac(zodiac); !ok {
		return Fortune{}, fmt.Errorf("%w: zodiac %q", ErrUnknownChoice, zodiac)
	}
	if _, ok := findColor(color); !ok {
		return Fortune{}, fmt.Errorf("%w: colour %q", ErrUnknownChoice, color)
	}
	if _, ok := personalityTraits[p]; !ok {
		return Fortune{}, fmt.Errorf("%w: personality %q", ErrUnknownChoice, p)
	}

	seed := fortuneSeed(zodiac + color + string(p))
	line := func(lines []string, offset int64) string {
		return lines[(seed+offset)%int64(len(lines))]
	}
	return Fortune{
		Zodiac:      zodiac,
		Color:       color,
		Personality: p,
		Career:      line(fortuneLines.career, 0),
		Wealth:      line(fortuneLines.wealth, 1),
		Love:        line(fortuneLines.love, 2),
		Health:      line(fortuneLines.health, 3),
		LuckyNumber: int(seed%9) + 1,
		Score:       75 + int(seed%20),
	}, nil
}

// Intro describes the pony that comes with the reading
func (f Fortune) Intro() string {
	z, _ := findZodiac(f.Zodiac)
	return fmt.Sprintf("%s! Your pony is %s and %s, ready for a lucky Year of the Horse.",
		z.Blessing, personalityTraits[f.Personality], z.Look)
}

// LuckyColor returns the display name of the reading's colour
func (f Fortune) LuckyColor() string {
	c, _ := findColor(f.Color)
	return c.Name
}

// fortuneSeed is a 32-bit string hash (h = h*31 + c) folded to a
// non-negative value
func fortuneSeed(s string) int64 {
	var h int32
	for _, c := range s {
		h = h*31 + int32(c)
	}
	seed := int64(h)
	if seed < 0 {
		seed = -seed
	}
	return seed
}

func findZodiac(id string) (Zodiac, bool) {
	i := slices.IndexFunc(Zodiacs, func(z Zodiac) bool { return z.ID == id })
	if i < 0 {
		return Zodiac{}, false
	}
	return Zodiacs[i], true
}

func findColor(id string) (LuckyColor, bool) {
	i := slices.IndexFunc(LuckyColors, func(c LuckyColor) bool { return c.ID == id })
	if i < 0 {
		return LuckyColor{}, false
	}
	return LuckyColors[i], true
}
