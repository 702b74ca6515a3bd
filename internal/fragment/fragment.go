// Package fragment keeps the fragment balance and turns fragments into
// decorations.
package fragment

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"pony/internal/decoration"
	"pony/internal/store"
)

var (
	ErrInsufficient   = errors.New("not enough fragments")
	ErrUnknownRecipe  = errors.New("no such recipe")
	ErrNegativeAmount = errors.New("fragment amounts cannot be negative")
)

// Recipe is the fragment price of a decoration
type Recipe struct {
	ID   string
	Cost int
}

// RecipeView is a recipe annotated for the crafting screen
type RecipeView struct {
	Recipe
	Decoration decoration.Decoration
	Owned      bool
	Affordable bool
}

// Recipes lists every craftable decoration in catalog order
var Recipes = []Recipe{
	{ID: "saddle_basic", Cost: 3},
	{ID: "rein_simple", Cost: 3},
	{ID: "wreath_flower", Cost: 3},
	{ID: "hat_fortune", Cost: 8},
	{ID: "cape_lucky", Cost: 8},
	{ID: "wings_small", Cost: 10},
	{ID: "horseshoe_glow", Cost: 10},
	{ID: "plate_success", Cost: 20},
	{ID: "saddle_gold", Cost: 25},
}

// FindRecipe looks up a recipe by decoration id
func FindRecipe(id string) (Recipe, bool) {
	for _, r := range Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

type balance struct {
	Count int `json:"count"`
}

// Ledger is the persisted fragment balance. It never goes negative.
type Ledger struct {
	kv   store.KeyValueStore
	data balance
}

func NewLedger(kv store.KeyValueStore) *Ledger {
	l := &Ledger{kv: kv}
	if !store.Load(kv, store.KeyFragments, &l.data) {
		l.data = balance{}
	}
	l.data.Count = max(l.data.Count, 0)
	return l
}

func (l *Ledger) Count() int {
	return l.data.Count
}

// Add credits fragments
func (l *Ledger) Add(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, n)
	}
	if n == 0 {
		return nil
	}
	l.data.Count += n
	l.save()
	log.Printf("Gained %d fragments. Balance is now %d", n, l.data.Count)
	return nil
}

// Set replaces the balance. Wager games report their final balance this way.
func (l *Ledger) Set(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, n)
	}
	l.data.Count = n
	l.save()
	return nil
}

// CanCraft reports whether the balance covers the recipe
func (l *Ledger) CanCraft(id string) bool {
	r, ok := FindRecipe(id)
	return ok && l.data.Count >= r.Cost
}

// Craft debits the recipe cost. On failure the balance is untouched. The
// caller is responsible for adding the decoration to the bag.
func (l *Ledger) Craft(id string) (Recipe, error) {
	r, ok := FindRecipe(id)
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q", ErrUnknownRecipe, id)
	}
	if l.data.Count < r.Cost {
		return Recipe{}, fmt.Errorf("%w: need %d, have %d", ErrInsufficient, r.Cost, l.data.Count)
	}

	l.data.Count -= r.Cost
	l.save()
	log.Printf("Crafted %s for %d fragments. Balance is now %d", r.ID, r.Cost, l.data.Count)
	return r, nil
}

// RecipeViews annotates every recipe with ownership and affordability
func (l *Ledger) RecipeViews(owned []string) []RecipeView {
	views := make([]RecipeView, 0, len(Recipes))
	for _, r := range Recipes {
		d, _ := decoration.Info(r.ID)
		views = append(views, RecipeView{
			Recipe:     r,
			Decoration: d,
			Owned:      slices.Contains(owned, r.ID),
			Affordable: l.data.Count >= r.Cost,
		})
	}
	return views
}

func (l *Ledger) save() {
	store.Save(l.kv, store.KeyFragments, l.data)
}
