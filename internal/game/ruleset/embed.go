package ruleset

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultClasses returns the embedded canonical class set (warrior, mage,
// rogue), parsed and validated.
//
// Postcondition: Returns classes in file-name order, or an error if an
// embedded definition fails to parse or validate.
func DefaultClasses() ([]*Class, error) {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("reading embedded classes: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	classes := make([]*Class, 0, len(entries))
	for _, entry := range entries {
		data, err := defaultsFS.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded class %q: %w", entry.Name(), err)
		}
		c, err := LoadClassFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading embedded class %q: %w", entry.Name(), err)
		}
		classes = append(classes, c)
	}
	return classes, nil
}

// DefaultRegistry returns a Registry populated with the embedded classes.
//
// Postcondition: Returns a non-nil Registry or an error from DefaultClasses.
func DefaultRegistry() (*Registry, error) {
	classes, err := DefaultClasses()
	if err != nil {
		return nil, err
	}
	return NewRegistry(classes), nil
}
