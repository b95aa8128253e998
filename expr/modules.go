// SPDX-License-Identifier: MIT
// Package expr: ModuleSet is an insertion-ordered mapping from module name
// to gene identifiers. Order must not depend on Go map iteration, so the
// set keeps an explicit name slice alongside the lookup map.

package expr

import "fmt"

// ModuleSet maps module names to gene identifier lists while preserving
// insertion order. The zero value is not usable; use NewModuleSet.
//
// Gene lists may be empty (tolerated: the module simply scores missing for
// every sample). Gene identifiers inside one module need not be unique;
// scorers deduplicate on intersection.
type ModuleSet struct {
	names []string            // insertion order, unique
	genes map[string][]string // name → gene identifiers
}

// NewModuleSet returns an empty module set.
func NewModuleSet() *ModuleSet {
	return &ModuleSet{genes: make(map[string][]string)}
}

// Add appends a module under name with the given gene identifiers.
// The gene slice is copied.
//
// Errors:
//   - ErrEmptyModuleName  — name is ""
//   - ErrDuplicateModule  — name was already added
func (s *ModuleSet) Add(name string, genes []string) error {
	if name == "" {
		return fmt.Errorf("expr.ModuleSet.Add: %w", ErrEmptyModuleName)
	}
	if _, seen := s.genes[name]; seen {
		return fmt.Errorf("expr.ModuleSet.Add: %q: %w", name, ErrDuplicateModule)
	}
	s.names = append(s.names, name)
	s.genes[name] = append([]string(nil), genes...)

	return nil
}

// Len returns the number of modules.
func (s *ModuleSet) Len() int { return len(s.names) }

// Names returns a copy of the module names in insertion order.
// This is the fallback ordering for modules absent from a preferred order.
func (s *ModuleSet) Names() []string { return append([]string(nil), s.names...) }

// Genes returns a copy of the gene identifiers of module name, and whether
// the module exists.
func (s *ModuleSet) Genes(name string) ([]string, bool) {
	g, ok := s.genes[name]
	if !ok {
		return nil, false
	}

	return append([]string(nil), g...), true
}

// Contains reports whether the set has a module under name.
func (s *ModuleSet) Contains(name string) bool {
	_, ok := s.genes[name]

	return ok
}
