package teachta

import (
	"sync"
)

// bindingTable is the shared namespace that literal accessors fall back to
// when the receiver has no matching field. It stands in for the host
// language's global or constant bindings.
type bindingTable struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// newBindingTable creates a new binding table.
func newBindingTable() *bindingTable {
	return &bindingTable{
		values: make(map[string]interface{}),
	}
}

// bind stores a value under name. Rebinding replaces the previous value.
//
// This method is goroutine-safe.
func (bt *bindingTable) bind(name string, value interface{}) error {
	if name == "" {
		return &InvalidDelegationError{Reason: "binding name cannot be empty"}
	}

	bt.mu.Lock()
	defer bt.mu.Unlock()

	bt.values[name] = value
	return nil
}

// lookup returns the value bound under name.
//
// This method is goroutine-safe.
func (bt *bindingTable) lookup(name string) (interface{}, bool) {
	bt.mu.RLock()
	defer bt.mu.RUnlock()

	value, ok := bt.values[name]
	return value, ok
}

// unbind removes the binding for name. Returns true if a binding existed.
//
// This method is goroutine-safe.
func (bt *bindingTable) unbind(name string) bool {
	bt.mu.Lock()
	defer bt.mu.Unlock()

	_, ok := bt.values[name]
	delete(bt.values, name)
	return ok
}

// globalBindings is the process-wide table consulted by literal accessors.
var globalBindings = newBindingTable()

// Bind registers value under name in the global binding table. Delegations
// whose literal accessor matches no receiver field resolve here. Rebinding
// an existing name replaces the previous value.
//
// Example:
//
//	teachta.Bind("Clock", &SystemClock{})
//	delegator.DefineDelegator("Clock", "Now")
func Bind(name string, value interface{}) error {
	return globalBindings.bind(name, value)
}

// Lookup returns the value bound under name in the global binding table.
func Lookup(name string) (interface{}, bool) {
	return globalBindings.lookup(name)
}

// Unbind removes name from the global binding table.
// Returns true if a binding existed.
func Unbind(name string) bool {
	return globalBindings.unbind(name)
}
