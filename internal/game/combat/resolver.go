// Package combat implements the attack resolver and the battle session state
// machine for the dungeon simulator.
package combat

import (
	"github.com/cory-johannsen/dungeonsim/internal/game/dice"
	"github.com/cory-johannsen/dungeonsim/internal/game/enemy"
	"github.com/cory-johannsen/dungeonsim/internal/game/hero"
)

// EnemyMissChance is the probability that an enemy attack misses outright.
// A miss bypasses mitigation entirely; it is not a zero-damage hit.
const EnemyMissChance = 0.15

// CritMultiplier is the flat multiplier applied to hero damage on a
// critical hit, before mitigation.
const CritMultiplier = 2.0

// Damage variance windows, inclusive on both ends.
const (
	heroVarianceMin  = -5
	heroVarianceMax  = 10
	enemyVarianceMin = -3
	enemyVarianceMax = 8
)

// Source is the subset of dice.Source used by the resolver.
// Using a local interface lets tests inject fixed or scripted sources.
type Source interface {
	Intn(n int) int
}

// AttackResult holds the outcome of a single resolved attack.
type AttackResult struct {
	// Raw is the pre-mitigation damage: attack + variance, doubled on crit.
	Raw int
	// Dealt is the post-mitigation damage actually subtracted from the
	// defender. Zero only for a miss.
	Dealt int
	// Critical is true when the hero's crit chance draw succeeded.
	Critical bool
	// Missed is true when the enemy's attack missed outright.
	Missed bool
}

// mitigate applies defense-based reduction to raw damage.
// Mitigation never drives a non-miss hit below 1.
func mitigate(raw, defense int) int {
	dmg := raw - defense/2
	if dmg < 1 {
		return 1
	}
	return dmg
}

// ResolveHeroAttack resolves one hero attack against e and applies the
// damage. Draw order is fixed: crit chance, then damage variance.
//
// Precondition: h, e, and src must be non-nil; h must be alive.
// Postcondition: e.CurrentHealth is reduced by result.Dealt; result.Dealt
// >= 1; result.Missed is always false (heroes never miss).
func ResolveHeroAttack(h *hero.Hero, e *enemy.Enemy, src Source) AttackResult {
	critical := dice.Chance(src, h.CriticalChance)
	raw := h.Attack + dice.IntBetween(src, heroVarianceMin, heroVarianceMax)
	if critical {
		raw = int(float64(raw) * CritMultiplier)
	}

	dealt := mitigate(raw, e.Defense)
	e.ApplyDamage(dealt)

	return AttackResult{Raw: raw, Dealt: dealt, Critical: critical}
}

// ResolveEnemyAttack resolves one enemy attack against h. On a miss no
// damage draw is consumed and h is untouched; otherwise mitigated damage is
// applied. Draw order is fixed: miss chance, then damage variance.
//
// Precondition: e, h, and src must be non-nil; e must be alive.
// Postcondition: Either result.Missed is true and h is unchanged, or
// h.CurrentHealth is reduced by result.Dealt with result.Dealt >= 1.
func ResolveEnemyAttack(e *enemy.Enemy, h *hero.Hero, src Source) AttackResult {
	if dice.Chance(src, EnemyMissChance) {
		return AttackResult{Missed: true}
	}

	raw := e.Attack + dice.IntBetween(src, enemyVarianceMin, enemyVarianceMax)
	dealt := mitigate(raw, h.Defense)
	h.ApplyDamage(dealt)

	return AttackResult{Raw: raw, Dealt: dealt}
}
