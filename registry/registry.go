// Package registry provides thread-safe storage and retrieval of delegation specs.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Spec describes one delegation: where the target comes from, which method
// to forward to, and the public name the forwarder is installed under.
type Spec struct {
	// Accessor is the expression used to obtain the delegation target at
	// call time. A leading "@" marks an explicit field reference.
	Accessor string

	// Kind records how the accessor resolves.
	// Values: "method", "literal". The choice is frozen at definition time.
	Kind string

	// Method is the name invoked on the resolved target.
	Method string

	// Alias is the public name the forwarder is installed under.
	// Defaults to Method.
	Alias string

	// Direct indicates the forwarder may call the target method through
	// the language's normal call mechanism. When false the forwarder goes
	// through the generic call-by-name primitive instead.
	Direct bool

	// DefinedAt is the file:line of the definition site, captured when the
	// spec was registered. Used to attribute diagnostics.
	DefinedAt string
}

// Forwarder is the generated method body for one spec. It resolves the
// accessor against the receiver and forwards args to the target method.
type Forwarder func(receiver interface{}, args []interface{}) ([]interface{}, error)

// Entry pairs a spec with its generated forwarder.
type Entry struct {
	Spec    *Spec
	Forward Forwarder
}

// Registry is the dispatch table for one owner scope.
// It maps alias names to installed forwarders.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// New creates a new Registry instance.
func New() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Install stores an entry under its alias. Installing a second entry with
// the same alias silently replaces the first; only the later definition is
// observable afterwards.
//
// This method is goroutine-safe.
func (r *Registry) Install(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("entry cannot be nil")
	}
	if entry.Spec == nil || entry.Spec.Alias == "" {
		return fmt.Errorf("entry must carry a spec with a non-empty alias")
	}
	if entry.Forward == nil {
		return fmt.Errorf("entry must carry a forwarder")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.Spec.Alias] = entry
	return nil
}

// Get retrieves the entry installed under alias.
// Returns nil entry and an error if no such alias is installed.
//
// This method is goroutine-safe.
func (r *Registry) Get(alias string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[alias]
	if !exists {
		return nil, &DelegatorNotFoundError{Alias: alias}
	}

	return entry, nil
}

// Has checks if an entry exists for the given alias.
//
// This method is goroutine-safe.
func (r *Registry) Has(alias string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.entries[alias]
	return exists
}

// Remove deletes the entry installed under alias.
// Returns true if an entry was removed.
//
// This method is goroutine-safe.
func (r *Registry) Remove(alias string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.entries[alias]
	delete(r.entries, alias)
	return exists
}

// Aliases returns the installed alias names in sorted order.
//
// This method is goroutine-safe.
func (r *Registry) Aliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aliases := make([]string, 0, len(r.entries))
	for alias := range r.entries {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// DelegatorNotFoundError is returned when no forwarder is installed
// under the requested alias.
type DelegatorNotFoundError struct {
	Alias string
}

func (e *DelegatorNotFoundError) Error() string {
	return fmt.Sprintf("no delegator installed for alias %q", e.Alias)
}
