// Package ruleset defines the hero class stat tables the simulator is built
// on. Classes are loaded from YAML so new classes can be added without code
// changes; the three canonical classes ship embedded in the binary.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CritChanceCap is the hard upper bound on derived critical chance.
const CritChanceCap = 0.75

// Per-level stat growth applied on top of the class base values.
const (
	healthPerLevel  = 10
	attackPerLevel  = 2
	defensePerLevel = 1
	critPerLevel    = 0.002
)

// Class defines a playable hero class and its base combat stats.
//
// Precondition: ID and Name must be non-empty and all base stats positive
// after loading.
type Class struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	BaseHealth  int     `yaml:"base_health"`
	BaseAttack  int     `yaml:"base_attack"`
	BaseDefense int     `yaml:"base_defense"`
	BaseCrit    float64 `yaml:"base_crit"`
}

// Validate checks that the class satisfies basic invariants.
//
// Precondition: c must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, BaseHealth,
// BaseAttack, and BaseDefense are >= 1, and BaseCrit is in [0, CritChanceCap];
// returns an error on the first violation otherwise.
func (c *Class) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("class: id must not be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("class %q: name must not be empty", c.ID)
	}
	if c.BaseHealth < 1 {
		return fmt.Errorf("class %q: base_health must be >= 1", c.ID)
	}
	if c.BaseAttack < 1 {
		return fmt.Errorf("class %q: base_attack must be >= 1", c.ID)
	}
	if c.BaseDefense < 1 {
		return fmt.Errorf("class %q: base_defense must be >= 1", c.ID)
	}
	if c.BaseCrit < 0 || c.BaseCrit > CritChanceCap {
		return fmt.Errorf("class %q: base_crit must be in [0, %g], got %g", c.ID, CritChanceCap, c.BaseCrit)
	}
	return nil
}

// MaxHealthAt returns the derived maximum health at the given level.
//
// Postcondition: Returns BaseHealth + level*10.
func (c *Class) MaxHealthAt(level int) int {
	return c.BaseHealth + level*healthPerLevel
}

// AttackAt returns the derived attack power at the given level.
//
// Postcondition: Returns BaseAttack + level*2.
func (c *Class) AttackAt(level int) int {
	return c.BaseAttack + level*attackPerLevel
}

// DefenseAt returns the derived defense at the given level.
//
// Postcondition: Returns BaseDefense + level*1.
func (c *Class) DefenseAt(level int) int {
	return c.BaseDefense + level*defensePerLevel
}

// CritChanceAt returns the derived critical hit chance at the given level,
// clamped to CritChanceCap.
//
// Postcondition: Returns min(BaseCrit + level*0.002, CritChanceCap).
func (c *Class) CritChanceAt(level int) float64 {
	crit := c.BaseCrit + float64(level)*critPerLevel
	if crit > CritChanceCap {
		return CritChanceCap
	}
	return crit
}

// LoadClassFromBytes parses a single class definition from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Class.
// Postcondition: Returns a validated *Class, or an error.
func LoadClassFromBytes(data []byte) (*Class, error) {
	var c Class
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing class YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadClasses reads all *.yaml files in dir and returns the parsed classes.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all classes or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadClasses(dir string) ([]*Class, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading class dir %q: %w", dir, err)
	}

	var classes []*Class
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		c, err := LoadClassFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		classes = append(classes, c)
	}
	return classes, nil
}
