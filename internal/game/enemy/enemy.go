// Package enemy provides procedural generation of the dungeon enemy a hero
// faces in a single battle.
package enemy

import (
	"fmt"

	"github.com/cory-johannsen/dungeonsim/internal/game/dice"
)

// Enemy level is drawn relative to the hero's level within this inclusive
// offset window. The derived level has no lower floor: a level-1 hero can
// roll a degenerate level -1 enemy, matching long-standing simulator
// behavior that downstream pipelines depend on.
const (
	levelOffsetMin = -2
	levelOffsetMax = 3
)

// HardcoreMultiplier scales enemy health and attack when hardcore mode is
// active. Defense is deliberately NOT scaled.
const HardcoreMultiplier = 1.5

// Name tables for procedural enemy names. Cosmetic only; the draw order
// (prefix then creature) is fixed so seeded runs reproduce the same name.
var (
	namePrefixes  = []string{"Dark", "Ancient", "Cursed", "Vile", "Shadow", "Blood"}
	nameCreatures = []string{"Dragon", "Demon", "Golem", "Wraith", "Beast", "Lich"}
)

// Enemy represents the procedurally generated opponent for one battle.
//
// Invariant: CurrentHealth <= MaxHealth; CurrentHealth only decreases.
type Enemy struct {
	Name     string
	Level    int
	Hardcore bool

	MaxHealth int
	Attack    int
	Defense   int

	// CurrentHealth may go negative between a damage application and the
	// death check; display code clamps at 0 via ClampedHealth.
	CurrentHealth int
}

// Generate creates an Enemy scaled to heroLevel, drawing its level offset
// and name from src.
//
// Draw order is fixed: level offset, name prefix, name creature. Given the
// same source state, Generate always produces the same enemy.
//
// Precondition: src must be non-nil.
// Postcondition: Returns an Enemy with CurrentHealth == MaxHealth; health
// and attack carry the hardcore multiplier when hardcore is true, defense
// never does.
func Generate(heroLevel int, hardcore bool, src dice.Source) *Enemy {
	level := heroLevel + dice.IntBetween(src, levelOffsetMin, levelOffsetMax)

	multiplier := 1.0
	if hardcore {
		multiplier = HardcoreMultiplier
	}

	prefix := namePrefixes[src.Intn(len(namePrefixes))]
	creature := nameCreatures[src.Intn(len(nameCreatures))]

	e := &Enemy{
		Name:      fmt.Sprintf("%s %s", prefix, creature),
		Level:     level,
		Hardcore:  hardcore,
		MaxHealth: int(float64(100+level*12) * multiplier),
		Attack:    int(float64(20+level*2) * multiplier),
		Defense:   10 + level,
	}
	e.CurrentHealth = e.MaxHealth
	return e
}

// Alive reports whether the enemy can still fight.
//
// Postcondition: Returns true iff CurrentHealth > 0.
func (e *Enemy) Alive() bool { return e.CurrentHealth > 0 }

// ApplyDamage reduces CurrentHealth by amount without clamping; callers check
// Alive afterwards and clamp for display only.
//
// Precondition: amount >= 0.
func (e *Enemy) ApplyDamage(amount int) {
	e.CurrentHealth -= amount
}

// ClampedHealth returns CurrentHealth floored at 0 for display.
//
// Postcondition: Returns max(CurrentHealth, 0).
func (e *Enemy) ClampedHealth() int {
	if e.CurrentHealth < 0 {
		return 0
	}
	return e.CurrentHealth
}
