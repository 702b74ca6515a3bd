// Package catch is the hay-catching mini-game: move the pony along the
// bottom row, catch falling hay and dodge bombs.
package catch

// Kind is what is falling
type Kind int

const (
	Hay Kind = iota
	GoldenHay
	Bomb
)

// Scoring and pacing
const (
	StartLives        = 3
	HayPoints         = 1
	GoldenHayPoints   = 3
	ComboStep         = 5  // every 5 catches in a row adds 1 to the multiplier
	PointsPerFragment = 10 // fragments earned = score / 10

	BombChance   = 0.15
	GoldenChance = 0.10

	startSpawnEvery = 12 // frames between spawns
	minSpawnEvery   = 5
	startFallSpeed  = 0.25 // rows per frame
	maxFallSpeed    = 0.8
	speedUpEvery    = 100 // frames
	minLanes        = 5
	minRows         = 6
)

// Rand drives spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Item is one falling object
type Item struct {
	Kind  Kind
	Lane  int
	Y     float64
	Speed float64
}

// Result is what a finished round reports
type Result struct {
	Score     int
	Fragments int
	MaxCombo  int
}

// Game is the round state. It knows nothing about terminals or timers.
type Game struct {
	Lanes int
	Rows  int
	Pony  int // lane the pony stands in
	Items []Item

	Score    int
	Lives    int
	Combo    int
	MaxCombo int
	Frame    int
	Over     bool

	rng        Rand
	spawnTimer int
	spawnEvery int
	fallSpeed  float64
}

// NewGame starts a round on a lanes by rows board
func NewGame(lanes, rows int, rng Rand) *Game {
	lanes = max(lanes, minLanes)
	rows = max(rows, minRows)
	return &Game{
		Lanes:      lanes,
		Rows:       rows,
		Pony:       lanes / 2,
		Lives:      StartLives,
		rng:        rng,
		spawnEvery: startSpawnEvery,
		fallSpeed:  startFallSpeed,
	}
}

// Move shifts the pony by dx lanes, staying on the board
func (g *Game) Move(dx int) {
	if g.Over {
		return
	}
	g.Pony = max(0, min(g.Lanes-1, g.Pony+dx))
}

// Resize changes the board, keeping the pony and items on it
func (g *Game) Resize(lanes, rows int) {
	g.Lanes = max(lanes, minLanes)
	g.Rows = max(rows, minRows)
	g.Pony = min(g.Pony, g.Lanes-1)
	for i := range g.Items {
		g.Items[i].Lane = min(g.Items[i].Lane, g.Lanes-1)
	}
}

// Step advances the round by one frame
func (g *Game) Step() {
	if g.Over {
		return
	}
	g.Frame++

	g.spawnTimer++
	if g.spawnTimer >= g.spawnEvery {
		g.spawnTimer = 0
		g.spawn()
	}
	if g.Frame%speedUpEvery == 0 {
		g.fallSpeed = min(maxFallSpeed, g.fallSpeed+0.05)
		g.spawnEvery = max(minSpawnEvery, g.spawnEvery-1)
	}

	ponyRow := float64(g.Rows - 1)
	kept := g.Items[:0]
	for _, it := range g.Items {
		it.Y += it.Speed
		if it.Y < ponyRow {
			kept = append(kept, it)
			continue
		}

		// reached the bottom row: caught or missed
		if it.Lane == g.Pony {
			g.catch(it)
			if g.Over {
				g.Items = nil
				return
			}
			continue
		}
		if it.Kind != Bomb {
			g.Combo = 0
		}
	}
	g.Items = kept
}

func (g *Game) catch(it Item) {
	if it.Kind == Bomb {
		g.Lives--
		g.Combo = 0
		if g.Lives <= 0 {
			g.Over = true
		}
		return
	}

	points := HayPoints
	if it.Kind == GoldenHay {
		points = GoldenHayPoints
	}
	g.Score += points * (1 + g.Combo/ComboStep)
	g.Combo++
	g.MaxCombo = max(g.MaxCombo, g.Combo)
}

func (g *Game) spawn() {
	kind := Hay
	switch r := g.rng.Float64(); {
	case r < BombChance:
		kind = Bomb
	case r < BombChance+GoldenChance:
		kind = GoldenHay
	}

	lane := min(int(g.rng.Float64()*float64(g.Lanes)), g.Lanes-1)
	g.Items = append(g.Items, Item{
		Kind:  kind,
		Lane:  lane,
		Speed: g.fallSpeed + g.rng.Float64()*g.fallSpeed,
	})
}

// Result summarises the round
func (g *Game) Result() Result {
	return Result{
		Score:     g.Score,
		Fragments: g.Score / PointsPerFragment,
		MaxCombo:  g.MaxCombo,
	}
}
