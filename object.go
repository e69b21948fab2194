package teachta

import (
	"fmt"
)

// ObjectDelegator grants one specific object forwarding methods of its
// own. The accessor always resolves against that object; instances of the
// same type are unaffected. The object may itself stand in for a module
// or namespace, in which case the delegation behaves like one defined on
// the namespace object rather than on its members.
//
// Example:
//
//	registry := teachta.For(server)
//	registry.DefineDelegator("Store", "List", "ListUsers")
//	users, err := registry.Invoke("ListUsers")
type ObjectDelegator struct {
	core   delegatorCore
	object interface{}
}

// For creates a delegation scope bound to the one given object.
func For(object interface{}, options ...Option) *ObjectDelegator {
	if object == nil {
		panic("cannot create a delegation scope for a nil object")
	}
	return &ObjectDelegator{
		core:   newDelegatorCore(fmt.Sprintf("%T", object), object, options),
		object: object,
	}
}

// DefineDelegator installs a forwarding method for method, reachable
// through accessor, under alias (default: the method name). Returns the
// installed alias. Reachability is not validated until the forwarder is
// invoked.
func (d *ObjectDelegator) DefineDelegator(accessor, method string, alias ...string) (string, error) {
	name := ""
	if len(alias) > 0 {
		name = alias[0]
	}
	return d.core.define(accessor, method, name, callerLocation(2))
}

// DefineDelegators installs one forwarding method per name, each under
// its own name. Reserved identity/dispatch names are skipped.
func (d *ObjectDelegator) DefineDelegators(accessor string, methods ...string) error {
	return d.core.defineBatch(accessor, methods, callerLocation(2))
}

// Delegate installs forwarding methods for every accessor -> methods pair
// in the mapping, each under the method's own name.
func (d *ObjectDelegator) Delegate(mapping map[string][]string) error {
	return d.core.defineMapping(mapping, callerLocation(2))
}

// Invoke calls the forwarding method installed under alias. The accessor
// is resolved against the bound object at this moment; results and
// failures are exactly those of the target call.
func (d *ObjectDelegator) Invoke(alias string, args ...interface{}) ([]interface{}, error) {
	entry, err := d.core.table.Get(alias)
	if err != nil {
		return nil, err
	}
	return entry.Forward(d.object, args)
}

// Method returns the forwarding method installed under alias. The binding
// is by name: redefining the alias later changes what the returned Method
// does.
func (d *ObjectDelegator) Method(alias string) (Method, error) {
	if _, err := d.core.table.Get(alias); err != nil {
		return nil, err
	}
	return func(args ...interface{}) ([]interface{}, error) {
		return d.Invoke(alias, args...)
	}, nil
}

// HasDelegator reports whether a forwarding method is installed under
// alias.
func (d *ObjectDelegator) HasDelegator(alias string) bool {
	return d.core.has(alias)
}

// Installed returns the aliases of all installed forwarding methods in
// sorted order.
func (d *ObjectDelegator) Installed() []string {
	return d.core.installed()
}

// RemoveDelegator uninstalls the forwarding method under alias.
// Returns true if one was installed.
func (d *ObjectDelegator) RemoveDelegator(alias string) bool {
	return d.core.table.Remove(alias)
}

// Object returns the object this delegation scope is bound to.
func (d *ObjectDelegator) Object() interface{} {
	return d.object
}
