package catch

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// scriptedRand replays values and then repeats the last one
type scriptedRand struct {
	values []float64
}

func (r *scriptedRand) Float64() float64 {
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v
}

func newTestGame(values ...float64) *Game {
	return NewGame(6, 8, &scriptedRand{values: values})
}

func TestNewGameMinimumBoard(t *testing.T) {
	g := NewGame(1, 1, &scriptedRand{values: []float64{0.5}})

	if g.Lanes != minLanes || g.Rows != minRows {
		t.Errorf("Expected %dx%d board, got %dx%d", minLanes, minRows, g.Lanes, g.Rows)
	}
	if g.Lives != StartLives {
		t.Errorf("Expected %d lives, got %d", StartLives, g.Lives)
	}
	if g.Pony != minLanes/2 {
		t.Errorf("Expected pony centred at %d, got %d", minLanes/2, g.Pony)
	}
}

func TestMoveStaysOnBoard(t *testing.T) {
	g := newTestGame(0.5)

	for range 20 {
		g.Move(-1)
	}
	if g.Pony != 0 {
		t.Errorf("Expected pony at 0, got %d", g.Pony)
	}
	for range 20 {
		g.Move(1)
	}
	if g.Pony != g.Lanes-1 {
		t.Errorf("Expected pony at %d, got %d", g.Lanes-1, g.Pony)
	}
}

func TestCatchScoring(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		combo int
		score int
	}{
		{"hay", Hay, 0, 1},
		{"golden hay", GoldenHay, 0, 3},
		{"hay with combo 5", Hay, 5, 2},
		{"golden hay with combo 10", GoldenHay, 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(0.99)
			g.Combo = tt.combo
			g.catch(Item{Kind: tt.kind})

			if g.Score != tt.score {
				t.Errorf("Expected score %d, got %d", tt.score, g.Score)
			}
			if g.Combo != tt.combo+1 {
				t.Errorf("Expected combo %d, got %d", tt.combo+1, g.Combo)
			}
		})
	}
}

func TestBombCostsLifeAndCombo(t *testing.T) {
	g := newTestGame(0.99)
	g.Combo = 4

	g.catch(Item{Kind: Bomb})

	if g.Lives != StartLives-1 {
		t.Errorf("Expected %d lives, got %d", StartLives-1, g.Lives)
	}
	if g.Combo != 0 {
		t.Errorf("Expected combo reset, got %d", g.Combo)
	}
	if g.Over {
		t.Error("Expected round to continue")
	}

	g.catch(Item{Kind: Bomb})
	g.catch(Item{Kind: Bomb})
	if !g.Over {
		t.Error("Expected round over after last life")
	}
}

func TestStepCatchesItemInPonyLane(t *testing.T) {
	g := newTestGame(0.99)
	g.Items = []Item{{Kind: Hay, Lane: g.Pony, Y: float64(g.Rows - 2), Speed: 1}}

	g.Step()

	if g.Score != 1 {
		t.Errorf("Expected score 1, got %d", g.Score)
	}
	if len(g.Items) != 0 {
		t.Errorf("Expected caught item removed, got %d items", len(g.Items))
	}
}

func TestStepMissedHayResetsCombo(t *testing.T) {
	g := newTestGame(0.99)
	g.Combo = 3
	other := (g.Pony + 1) % g.Lanes
	g.Items = []Item{{Kind: Hay, Lane: other, Y: float64(g.Rows - 2), Speed: 1}}

	g.Step()

	if g.Combo != 0 {
		t.Errorf("Expected combo reset, got %d", g.Combo)
	}
	if g.Score != 0 {
		t.Errorf("Expected score 0, got %d", g.Score)
	}
	if len(g.Items) != 0 {
		t.Errorf("Expected missed item removed, got %d items", len(g.Items))
	}
}

func TestStepDodgedBombKeepsCombo(t *testing.T) {
	g := newTestGame(0.99)
	g.Combo = 3
	other := (g.Pony + 1) % g.Lanes
	g.Items = []Item{{Kind: Bomb, Lane: other, Y: float64(g.Rows - 2), Speed: 1}}

	g.Step()

	if g.Combo != 3 {
		t.Errorf("Expected combo 3, got %d", g.Combo)
	}
	if g.Lives != StartLives {
		t.Errorf("Expected %d lives, got %d", StartLives, g.Lives)
	}
}

func TestSpawnKinds(t *testing.T) {
	tests := []struct {
		roll float64
		want Kind
	}{
		{0.0, Bomb},
		{0.14, Bomb},
		{0.16, GoldenHay},
		{0.24, GoldenHay},
		{0.26, Hay},
		{0.99, Hay},
	}

	for _, tt := range tests {
		g := newTestGame(tt.roll, 0.5, 0.5)
		g.spawn()

		if len(g.Items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(g.Items))
		}
		if g.Items[0].Kind != tt.want {
			t.Errorf("Roll %v: expected kind %d, got %d", tt.roll, tt.want, g.Items[0].Kind)
		}
		if g.Items[0].Lane != 3 {
			t.Errorf("Roll %v: expected lane 3, got %d", tt.roll, g.Items[0].Lane)
		}
	}
}

func TestStepSpawnsOnSchedule(t *testing.T) {
	g := newTestGame(0.99)

	for range startSpawnEvery - 1 {
		g.Step()
	}
	if len(g.Items) != 0 {
		t.Errorf("Expected no items yet, got %d", len(g.Items))
	}

	g.Step()
	if len(g.Items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(g.Items))
	}
}

func TestResultFragments(t *testing.T) {
	g := newTestGame(0.99)
	g.Score = 37
	g.MaxCombo = 12

	res := g.Result()

	if res.Fragments != 3 {
		t.Errorf("Expected 3 fragments, got %d", res.Fragments)
	}
	if res.Score != 37 || res.MaxCombo != 12 {
		t.Errorf("Expected score 37 and combo 12, got %+v", res)
	}
}

func TestResizeKeepsPonyOnBoard(t *testing.T) {
	g := NewGame(12, 10, &scriptedRand{values: []float64{0.5}})
	g.Pony = 11
	g.Items = []Item{{Kind: Hay, Lane: 10}}

	g.Resize(6, 8)

	if g.Pony != 5 {
		t.Errorf("Expected pony at 5, got %d", g.Pony)
	}
	if g.Items[0].Lane != 5 {
		t.Errorf("Expected item lane 5, got %d", g.Items[0].Lane)
	}
}

func TestModelQuitEndsRound(t *testing.T) {
	m := New(&scriptedRand{values: []float64{0.99}})
	m.Game.Score = 25

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := updated.(Model)

	if !model.Done() {
		t.Error("Expected round done after esc")
	}
	if cmd == nil {
		t.Fatal("Expected a finished command")
	}
	msg, ok := cmd().(FinishedMsg)
	if !ok {
		t.Fatalf("Expected FinishedMsg, got %T", cmd())
	}
	if msg.Result.Score != 25 || msg.Result.Fragments != 2 {
		t.Errorf("Expected score 25 and 2 fragments, got %+v", msg.Result)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := New(&scriptedRand{values: []float64{0.99}})
	m.TermWidth, m.TermHeight = 40, 20

	updated, cmd := m.Update(tickMsg{})
	if cmd != nil {
		t.Error("Expected stale tick to be dropped")
	}
	if updated.(Model).Game.Frame != 0 {
		t.Error("Expected stale tick not to advance the round")
	}
}

func TestModelMovesPony(t *testing.T) {
	m := New(&scriptedRand{values: []float64{0.99}})
	start := m.Game.Pony

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	if updated.(Model).Game.Pony != start-1 {
		t.Errorf("Expected pony at %d, got %d", start-1, updated.(Model).Game.Pony)
	}
}

func TestModelResizeFitsTerminal(t *testing.T) {
	m := New(&scriptedRand{values: []float64{0.99}})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	g := updated.(Model).Game

	if g.Lanes != maxLanes || g.Rows != maxRows {
		t.Errorf("Expected %dx%d board, got %dx%d", maxLanes, maxRows, g.Lanes, g.Rows)
	}
}
