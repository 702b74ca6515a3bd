package pet

import (
	"log"

	"pony/internal/clock"
	"pony/internal/store"
)

// Engine owns the live pony and writes it back after every change
type Engine struct {
	clock clock.Clock
	kv    store.KeyValueStore
	pet   Pet
}

// Adopt creates a new pony and saves it immediately
func Adopt(c clock.Clock, kv store.KeyValueStore, name string) *Engine {
	e := &Engine{clock: c, kv: kv, pet: NewPet(name, c.Now())}
	e.Save()
	log.Printf("Adopted new pony: %s", e.pet.Name)
	return e
}

// Load restores the saved pony and applies offline decay. It reports false
// when there is no usable saved pony, which means the player has to adopt.
func Load(c clock.Clock, kv store.KeyValueStore) (*Engine, bool) {
	var p Pet
	if !store.Load(kv, store.KeyHorse, &p) {
		return nil, false
	}

	p.normalize()
	e := &Engine{clock: c, kv: kv, pet: p}
	e.ApplyDecay()
	return e, true
}

// Pet returns a copy of the current state
func (e *Engine) Pet() Pet {
	p := e.pet
	p.Decorations = append([]string(nil), e.pet.Decorations...)
	return p
}

// ApplyDecay charges the time since the last activity and saves
func (e *Engine) ApplyDecay() {
	e.pet.ApplyDecay(e.clock.Now())
	e.Save()
}

// DecayWhileOpen charges whole hours of decay for a session that stays open.
// The activity time only moves by the hours charged.
func (e *Engine) DecayWhileOpen() bool {
	if !e.pet.DecayWholeHours(e.clock.Now()) {
		return false
	}
	e.write()
	return true
}

func (e *Engine) Feed() ActionResult {
	result := e.pet.Feed()
	e.Save()
	log.Printf("Fed pony. Hunger is now %d, Happiness is now %d", e.pet.Hunger, e.pet.Happiness)
	return result
}

func (e *Engine) Pat() ActionResult {
	result := e.pet.Pat()
	e.Save()
	log.Printf("Patted pony. Happiness is now %d", e.pet.Happiness)
	return result
}

func (e *Engine) Groom() ActionResult {
	result := e.pet.Groom()
	e.Save()
	log.Printf("Groomed pony. Happiness is now %d", e.pet.Happiness)
	return result
}

// Adjust shifts the gauges (boost bonuses, mini-game rewards) and saves
func (e *Engine) Adjust(hunger, happiness int) {
	e.pet.Adjust(hunger, happiness)
	e.Save()
}

func (e *Engine) Equip(id string) bool {
	changed := e.pet.EquipDecoration(id)
	if changed {
		e.Save()
	}
	return changed
}

func (e *Engine) Unequip(id string) bool {
	changed := e.pet.UnequipDecoration(id)
	if changed {
		e.Save()
	}
	return changed
}

// Save stamps the activity time and writes the pony
func (e *Engine) Save() {
	e.pet.LastActiveTime = e.clock.Now()
	e.write()
}

func (e *Engine) write() {
	store.Save(e.kv, store.KeyHorse, e.pet)
}
