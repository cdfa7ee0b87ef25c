package ruleset

import (
	"sort"
	"strings"
)

// Registry provides lookup of hero classes by ID.
type Registry struct {
	classes map[string]*Class
}

// NewRegistry returns a Registry holding the given classes.
//
// Precondition: every class must be non-nil with a non-empty ID.
// Postcondition: Returns a non-nil *Registry; if two classes share an ID
// (case-insensitive), the last one wins.
func NewRegistry(classes []*Class) *Registry {
	r := &Registry{classes: make(map[string]*Class, len(classes))}
	for _, c := range classes {
		r.Register(c)
	}
	return r
}

// Register adds a Class to the registry.
//
// Precondition: c must be non-nil with a non-empty ID.
// Postcondition: c is retrievable via Get using c.ID in any casing.
func (r *Registry) Register(c *Class) {
	if c == nil {
		panic("Registry.Register: precondition violated: class must be non-nil")
	}
	if c.ID == "" {
		panic("Registry.Register: precondition violated: class ID must be non-empty")
	}
	r.classes[strings.ToLower(c.ID)] = c
}

// Get returns the Class for the given ID, matched case-insensitively.
//
// Postcondition: Returns the registered Class and true, or nil and false if
// not found.
func (r *Registry) Get(id string) (*Class, bool) {
	c, ok := r.classes[strings.ToLower(id)]
	return c, ok
}

// IDs returns the sorted list of registered class IDs.
//
// Postcondition: Returns lowercase IDs in ascending order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.classes))
	for id := range r.classes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
