package decoration

import (
	"math"
	"math/rand"
	"testing"

	"pony/internal/store"
)

// scriptedRand replays a fixed list of values
type scriptedRand struct {
	values []float64
	i      int
}

func (s *scriptedRand) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func TestCatalogShape(t *testing.T) {
	if len(Catalog) != 9 {
		t.Fatalf("Expected 9 decorations, got %d", len(Catalog))
	}
	if TotalRarity() != 165 {
		t.Errorf("Expected total rarity 165, got %d", TotalRarity())
	}

	seen := map[string]bool{}
	for _, d := range Catalog {
		if seen[d.ID] {
			t.Errorf("Duplicate decoration id %q", d.ID)
		}
		seen[d.ID] = true
		if d.Rarity <= 0 {
			t.Errorf("%s has non-positive rarity", d.ID)
		}
	}
}

func TestDropChance(t *testing.T) {
	tests := []struct {
		hunger, happiness int
		want              float64
	}{
		{0, 0, 0.10},
		{100, 100, 0.20},
		{50, 50, 0.15},
		{100, 0, 0.15},
	}

	for _, tt := range tests {
		if got := DropChance(tt.hunger, tt.happiness); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DropChance(%d, %d) = %f, want %f", tt.hunger, tt.happiness, got, tt.want)
		}
	}
}

func TestPickBoundaries(t *testing.T) {
	tests := []struct {
		u    float64
		want string
	}{
		{0, "saddle_basic"},
		{39.9 / 165, "saddle_basic"},
		{40.5 / 165, "rein_simple"},
		{80.5 / 165, "wreath_flower"},
		{115.5 / 165, "hat_fortune"},
		{160.5 / 165, "plate_success"},
		{163.5 / 165, "saddle_gold"},
		{0.999999, "saddle_gold"},
	}

	for _, tt := range tests {
		if got := Pick(tt.u); got.ID != tt.want {
			t.Errorf("Pick(%f) = %s, want %s", tt.u, got.ID, tt.want)
		}
	}
}

func TestTryDrop(t *testing.T) {
	tests := []struct {
		name   string
		rolls  []float64
		want   bool
		wantID string
	}{
		{"roll under chance drops", []float64{0.05, 0}, true, "saddle_basic"},
		{"roll just over chance misses", []float64{0.16, 0}, false, ""},
		{"roll over chance misses", []float64{0.9, 0}, false, ""},
		{"rare pick", []float64{0.01, 0.999}, true, "saddle_gold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(store.NewMemoryStore(), &scriptedRand{values: tt.rolls})
			d, ok := e.TryDrop(50, 50)
			if ok != tt.want {
				t.Fatalf("Expected drop %v, got %v", tt.want, ok)
			}
			if ok && d.ID != tt.wantID {
				t.Errorf("Expected %s, got %s", tt.wantID, d.ID)
			}
			if tt.want && !e.Owns(tt.wantID) {
				t.Errorf("Expected %s in the bag", tt.wantID)
			}
			if !ok && len(e.BagIDs()) != 0 {
				t.Error("Expected a miss to leave the bag empty")
			}
		})
	}
}

func TestPickFrequenciesConverge(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const trials = 200000
	counts := map[string]int{}

	for i := 0; i < trials; i++ {
		counts[Pick(rng.Float64()).ID]++
	}

	total := float64(TotalRarity())
	for _, d := range Catalog {
		want := float64(d.Rarity) / total
		got := float64(counts[d.ID]) / trials
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%s: frequency %.4f, want %.4f", d.ID, got, want)
		}
	}
}

func TestBagNeverDuplicates(t *testing.T) {
	kv := store.NewMemoryStore()
	e := New(kv, rand.New(rand.NewSource(7)))

	for i := 0; i < 5000; i++ {
		e.TryDrop(100, 100)
	}

	ids := e.BagIDs()
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("Decoration %s added twice", id)
		}
		seen[id] = true
	}
	if len(ids) > len(Catalog) {
		t.Errorf("Bag has %d items, catalog only %d", len(ids), len(Catalog))
	}

	reloaded := New(kv, rand.New(rand.NewSource(1)))
	if len(reloaded.BagIDs()) != len(ids) {
		t.Errorf("Expected bag to persist %d items, got %d", len(ids), len(reloaded.BagIDs()))
	}
}

func TestAddToBag(t *testing.T) {
	e := New(store.NewMemoryStore(), &scriptedRand{values: []float64{0.5}})

	if !e.AddToBag("cape_lucky") {
		t.Error("Expected first add to report new")
	}
	if e.AddToBag("cape_lucky") {
		t.Error("Expected second add to be a no-op")
	}
	if e.AddToBag("unicorn_horn") {
		t.Error("Expected unknown decoration to be refused")
	}

	bag := e.Bag()
	if len(bag) != 1 || bag[0].Name != "Lucky Cape" {
		t.Errorf("Unexpected bag %v", bag)
	}
}

func TestNewDropsUnknownSavedIDs(t *testing.T) {
	kv := store.NewMemoryStore()
	store.Save(kv, store.KeyBag, []string{"retired_hat", "cape_lucky", "cape_lucky"})

	e := New(kv, &scriptedRand{values: []float64{0.5}})

	ids := e.BagIDs()
	if len(ids) != 1 || ids[0] != "cape_lucky" {
		t.Errorf("Expected [cape_lucky], got %v", ids)
	}
	if len(e.Bag()) != len(ids) {
		t.Errorf("Expected Bag and BagIDs to agree, got %d and %d", len(e.Bag()), len(ids))
	}

	var saved []string
	if !store.Load(kv, store.KeyBag, &saved) || len(saved) != 1 {
		t.Errorf("Expected cleaned bag to be saved, got %v", saved)
	}
}

func TestInfo(t *testing.T) {
	d, ok := Info("wings_small")
	if !ok || d.Category != Special || d.Rarity != 10 {
		t.Errorf("Unexpected info %+v", d)
	}
	if _, ok := Info("nope"); ok {
		t.Error("Expected unknown id to be missing")
	}
}
