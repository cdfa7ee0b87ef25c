package hero_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeonsim/internal/game/hero"
	"github.com/cory-johannsen/dungeonsim/internal/game/ruleset"
)

func testRegistry(t *testing.T) *ruleset.Registry {
	t.Helper()
	reg, err := ruleset.DefaultRegistry()
	require.NoError(t, err)
	return reg
}

func TestNew_WarriorLevel1(t *testing.T) {
	h, err := hero.New("Conan", "warrior", 1, false, testRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, "Conan", h.Name)
	assert.Equal(t, "Warrior", h.Class.Name)
	assert.Equal(t, 160, h.MaxHealth)
	assert.Equal(t, 27, h.Attack)
	assert.Equal(t, 21, h.Defense)
	assert.InDelta(t, 0.152, h.CriticalChance, 1e-9)
	assert.Equal(t, h.MaxHealth, h.CurrentHealth)
	assert.True(t, h.Alive())
}

func TestNew_ClassCaseInsensitive(t *testing.T) {
	reg := testRegistry(t)
	a, err := hero.New("A", "Mage", 10, false, reg)
	require.NoError(t, err)
	b, err := hero.New("B", "MAGE", 10, false, reg)
	require.NoError(t, err)
	assert.Equal(t, a.MaxHealth, b.MaxHealth)
	assert.Equal(t, a.Attack, b.Attack)
}

func TestNew_EmptyName(t *testing.T) {
	_, err := hero.New("", "warrior", 1, false, testRegistry(t))
	require.ErrorIs(t, err, hero.ErrEmptyName)
}

func TestNew_InvalidClass(t *testing.T) {
	_, err := hero.New("Conan", "paladin", 1, false, testRegistry(t))
	require.ErrorIs(t, err, hero.ErrInvalidClass)
	assert.Contains(t, err.Error(), "paladin")
}

func TestNew_LevelOutOfRange(t *testing.T) {
	reg := testRegistry(t)
	for _, level := range []int{0, -1, 101, 1000} {
		_, err := hero.New("Conan", "warrior", level, false, reg)
		require.ErrorIs(t, err, hero.ErrLevelOutOfRange, "level=%d", level)
	}

	for _, level := range []int{1, 100} {
		_, err := hero.New("Conan", "warrior", level, false, reg)
		require.NoError(t, err, "level=%d", level)
	}
}

func TestNew_HardcoreDoesNotAffectHeroStats(t *testing.T) {
	reg := testRegistry(t)
	normal, err := hero.New("A", "mage", 50, false, reg)
	require.NoError(t, err)
	hardcore, err := hero.New("A", "mage", 50, true, reg)
	require.NoError(t, err)

	assert.Equal(t, normal.MaxHealth, hardcore.MaxHealth)
	assert.Equal(t, normal.Attack, hardcore.Attack)
	assert.Equal(t, normal.Defense, hardcore.Defense)
	assert.Equal(t, normal.CriticalChance, hardcore.CriticalChance)
	assert.True(t, hardcore.Hardcore)
}

func TestApplyDamage_NoInternalClamp(t *testing.T) {
	h, err := hero.New("Conan", "warrior", 1, false, testRegistry(t))
	require.NoError(t, err)

	h.ApplyDamage(100)
	assert.Equal(t, 60, h.CurrentHealth)
	assert.True(t, h.Alive())

	h.ApplyDamage(100)
	assert.Equal(t, -40, h.CurrentHealth)
	assert.False(t, h.Alive())
	assert.Equal(t, 0, h.ClampedHealth())
}

func TestNew_Property_StatsIncreaseWithLevel(t *testing.T) {
	reg := testRegistry(t)
	rapid.Check(t, func(rt *rapid.T) {
		classID := rapid.SampledFrom([]string{"warrior", "mage", "rogue"}).Draw(rt, "class")
		level := rapid.IntRange(1, 99).Draw(rt, "level")

		lower, err := hero.New("X", classID, level, false, reg)
		require.NoError(rt, err)
		higher, err := hero.New("X", classID, level+1, false, reg)
		require.NoError(rt, err)

		assert.Greater(rt, higher.MaxHealth, lower.MaxHealth)
		assert.Greater(rt, higher.Attack, lower.Attack)
		assert.Greater(rt, higher.Defense, lower.Defense)
		assert.GreaterOrEqual(rt, higher.CriticalChance, lower.CriticalChance)
		assert.LessOrEqual(rt, higher.CriticalChance, ruleset.CritChanceCap)
	})
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(hero.ErrInvalidClass, hero.ErrLevelOutOfRange))
	assert.False(t, errors.Is(hero.ErrLevelOutOfRange, hero.ErrEmptyName))
}
