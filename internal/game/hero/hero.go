// Package hero defines the hero domain model and its stat derivation.
package hero

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/dungeonsim/internal/game/ruleset"
)

// Level bounds accepted at construction.
const (
	MinLevel = 1
	MaxLevel = 100
)

// Validation sentinels for hero construction. Callers use errors.Is to map
// these to the validation exit path.
var (
	ErrEmptyName       = errors.New("hero name must not be empty")
	ErrInvalidClass    = errors.New("hero class is not a valid class")
	ErrLevelOutOfRange = errors.New("hero level is out of range")
)

// Hero represents the player's hero for a single battle.
//
// Derived stats (MaxHealth, Attack, Defense, CriticalChance) are computed
// once at construction from class and level and never change. CurrentHealth
// is the only mutable field.
//
// Invariant: CurrentHealth <= MaxHealth; CurrentHealth only decreases.
type Hero struct {
	Name     string
	Class    *ruleset.Class
	Level    int
	Hardcore bool

	MaxHealth      int
	Attack         int
	Defense        int
	CriticalChance float64

	// CurrentHealth may go negative between a damage application and the
	// death check; display code clamps at 0 via ClampedHealth.
	CurrentHealth int
}

// New constructs a Hero, resolving classID against reg and deriving all
// stats for the given level.
//
// The Hardcore flag is carried for enemy generation and reporting only; it
// never affects hero stats.
//
// Precondition: reg must be non-nil.
// Postcondition: Returns a fully derived Hero with CurrentHealth ==
// MaxHealth, or an error wrapping ErrEmptyName, ErrInvalidClass, or
// ErrLevelOutOfRange.
func New(name, classID string, level int, hardcore bool, reg *ruleset.Registry) (*Hero, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	class, ok := reg.Get(classID)
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidClass, classID, reg.IDs())
	}
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("%w: must be %d-%d, got %d", ErrLevelOutOfRange, MinLevel, MaxLevel, level)
	}

	h := &Hero{
		Name:           name,
		Class:          class,
		Level:          level,
		Hardcore:       hardcore,
		MaxHealth:      class.MaxHealthAt(level),
		Attack:         class.AttackAt(level),
		Defense:        class.DefenseAt(level),
		CriticalChance: class.CritChanceAt(level),
	}
	h.CurrentHealth = h.MaxHealth
	return h, nil
}

// Alive reports whether the hero can still fight.
//
// Postcondition: Returns true iff CurrentHealth > 0.
func (h *Hero) Alive() bool { return h.CurrentHealth > 0 }

// ApplyDamage reduces CurrentHealth by amount without clamping; callers check
// Alive afterwards and clamp for display only.
//
// Precondition: amount >= 0.
func (h *Hero) ApplyDamage(amount int) {
	h.CurrentHealth -= amount
}

// ClampedHealth returns CurrentHealth floored at 0 for display.
//
// Postcondition: Returns max(CurrentHealth, 0).
func (h *Hero) ClampedHealth() int {
	if h.CurrentHealth < 0 {
		return 0
	}
	return h.CurrentHealth
}
