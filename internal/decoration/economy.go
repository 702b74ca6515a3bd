// Package decoration holds the decoration catalog, the drop roll and the
// player's bag of owned decorations.
package decoration

import (
	"log"
	"slices"

	"pony/internal/store"
)

// Drop chance bounds
const (
	BaseDropChance  = 0.10
	BonusDropChance = 0.10
)

// Rand is the random source drops are rolled with. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Economy owns the bag and rolls drops
type Economy struct {
	kv  store.KeyValueStore
	rng Rand
	bag []string
}

// New loads the saved bag or starts an empty one. Ids that are not in the
// catalog or appear twice are dropped and the cleaned bag is saved back.
func New(kv store.KeyValueStore, rng Rand) *Economy {
	e := &Economy{kv: kv, rng: rng, bag: []string{}}

	var saved []string
	if !store.Load(kv, store.KeyBag, &saved) {
		return e
	}
	for _, id := range saved {
		if _, ok := Info(id); !ok || slices.Contains(e.bag, id) {
			log.Printf("Dropping decoration %q from saved bag", id)
			continue
		}
		e.bag = append(e.bag, id)
	}
	if len(e.bag) != len(saved) {
		store.Save(kv, store.KeyBag, e.bag)
	}
	return e
}

// DropChance grows linearly with the gauges from 10% at 0/0 to 20% at 100/100
func DropChance(hunger, happiness int) float64 {
	return BaseDropChance + (float64(hunger+happiness)/200)*BonusDropChance
}

// TryDrop rolls for a decoration after an interaction. On a hit it picks one
// by rarity, adds it to the bag if new, and returns it.
func (e *Economy) TryDrop(hunger, happiness int) (Decoration, bool) {
	if e.rng.Float64() >= DropChance(hunger, happiness) {
		return Decoration{}, false
	}

	d := Pick(e.rng.Float64())
	e.AddToBag(d.ID)
	log.Printf("Decoration dropped: %s", d.ID)
	return d, true
}

// Pick maps a uniform u in [0,1) onto the catalog by cumulative rarity, so
// item i is chosen with probability Rarity_i / TotalRarity.
func Pick(u float64) Decoration {
	remaining := u * float64(TotalRarity())
	for _, d := range Catalog {
		remaining -= float64(d.Rarity)
		if remaining < 0 {
			return d
		}
	}
	return Catalog[len(Catalog)-1]
}

// AddToBag records ownership. It reports whether the decoration was new.
func (e *Economy) AddToBag(id string) bool {
	if slices.Contains(e.bag, id) {
		return false
	}
	if _, ok := Info(id); !ok {
		log.Printf("Ignoring unknown decoration %q", id)
		return false
	}
	e.bag = append(e.bag, id)
	store.Save(e.kv, store.KeyBag, e.bag)
	return true
}

// Owns reports whether the decoration is in the bag
func (e *Economy) Owns(id string) bool {
	return slices.Contains(e.bag, id)
}

// BagIDs returns the owned ids in the order they were obtained
func (e *Economy) BagIDs() []string {
	return slices.Clone(e.bag)
}

// Bag returns the owned decorations in the order they were obtained
func (e *Economy) Bag() []Decoration {
	items := make([]Decoration, 0, len(e.bag))
	for _, id := range e.bag {
		if d, ok := Info(id); ok {
			items = append(items, d)
		}
	}
	return items
}
