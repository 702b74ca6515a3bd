package decoration

// Category groups decorations by how rare they are
type Category string

const (
	Basic   Category = "basic"
	Special Category = "special"
	Limited Category = "limited"
)

// Decoration is one catalog entry. Rarity is a relative drop weight.
type Decoration struct {
	ID       string
	Name     string
	Category Category
	Rarity   int
	Emoji    string
	Color    string
}

// Catalog is the fixed decoration table. Drop selection walks it in order.
var Catalog = []Decoration{
	{ID: "saddle_basic", Name: "Plain Saddle", Category: Basic, Rarity: 40, Emoji: "🪑", Color: "#8B4513"},
	{ID: "rein_simple", Name: "Simple Reins", Category: Basic, Rarity: 40, Emoji: "🪢", Color: "#DAA520"},
	{ID: "wreath_flower", Name: "Flower Wreath", Category: Basic, Rarity: 35, Emoji: "💐", Color: "#FF69B4"},

	{ID: "hat_fortune", Name: "Fortune Hat", Category: Special, Rarity: 15, Emoji: "🎩", Color: "#FFD700"},
	{ID: "cape_lucky", Name: "Lucky Cape", Category: Special, Rarity: 12, Emoji: "🧣", Color: "#FF4500"},
	{ID: "wings_small", Name: "Little Wings", Category: Special, Rarity: 10, Emoji: "🪽", Color: "#87CEEB"},
	{ID: "horseshoe_glow", Name: "Glowing Horseshoe", Category: Special, Rarity: 8, Emoji: "🧲", Color: "#FFD700"},

	{ID: "plate_success", Name: "Instant Success Plaque", Category: Limited, Rarity: 3, Emoji: "🏅", Color: "#FF6347"},
	{ID: "saddle_gold", Name: "Golden Saddle", Category: Limited, Rarity: 2, Emoji: "👑", Color: "#FFD700"},
}

// TotalRarity is the sum of every catalog weight
func TotalRarity() int {
	total := 0
	for _, d := range Catalog {
		total += d.Rarity
	}
	return total
}

// Info looks up a decoration by id
func Info(id string) (Decoration, bool) {
	for _, d := range Catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Decoration{}, false
}

// CategoryLabel returns the display name for a category
func CategoryLabel(c Category) string {
	switch c {
	case Special:
		return "Special"
	case Limited:
		return "Limited"
	default:
		return "Basic"
	}
}
