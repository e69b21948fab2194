package teachta

import (
	"reflect"
)

// TypeDelegator grants a type the ability to install instance-resolved
// forwarding methods. All instances of the type share one method table;
// the accessor resolves against the receiver handed to Invoke, so two
// calls on two receivers forward to two independently resolved targets.
//
// Example:
//
//	type Container struct {
//	    Items *ItemList
//	}
//
//	delegator := teachta.ForType(&Container{})
//	delegator.DefineDelegators("Items", "Push", "Size")
//
//	c := &Container{Items: &ItemList{}}
//	delegator.Invoke(c, "Push", 1)
type TypeDelegator struct {
	core      delegatorCore
	ownerType reflect.Type
}

// ForType creates a delegation scope for the prototype's type. The
// prototype is only used for definition-time probing; pass receivers of
// the same shape (value or pointer) to Invoke.
func ForType(prototype interface{}, options ...Option) *TypeDelegator {
	if prototype == nil {
		panic("cannot create a delegation scope for a nil prototype")
	}
	ownerType := reflect.TypeOf(prototype)
	return &TypeDelegator{
		core:      newDelegatorCore(ownerType.String(), prototype, options),
		ownerType: ownerType,
	}
}

// DefineDelegator installs an instance forwarding method for method,
// reachable through accessor, under alias (default: the method name).
// Returns the installed alias.
//
// The accessor and the target method are not validated here; a delegation
// that can never resolve only fails when the forwarder is invoked.
func (d *TypeDelegator) DefineDelegator(accessor, method string, alias ...string) (string, error) {
	name := ""
	if len(alias) > 0 {
		name = alias[0]
	}
	return d.core.define(accessor, method, name, callerLocation(2))
}

// DefineDelegators installs one instance forwarding method per name, each
// under its own name. Reserved identity/dispatch names are skipped.
func (d *TypeDelegator) DefineDelegators(accessor string, methods ...string) error {
	return d.core.defineBatch(accessor, methods, callerLocation(2))
}

// Delegate installs forwarding methods for every accessor -> methods pair
// in the mapping. It is shorthand for repeated DefineDelegator calls with
// the default alias.
//
// Example:
//
//	delegator.Delegate(map[string][]string{
//	    "Items": {"Push", "Size"},
//	    "Meta":  {"Name"},
//	})
func (d *TypeDelegator) Delegate(mapping map[string][]string) error {
	return d.core.defineMapping(mapping, callerLocation(2))
}

// Invoke calls the forwarding method installed under alias with receiver
// as the instance. The accessor is resolved against the receiver at this
// moment; results and failures are exactly those of the target call.
func (d *TypeDelegator) Invoke(receiver interface{}, alias string, args ...interface{}) ([]interface{}, error) {
	entry, err := d.core.table.Get(alias)
	if err != nil {
		return nil, err
	}

	if receiver == nil {
		return nil, &ReceiverMismatchError{Want: d.ownerType}
	}
	receiverType := reflect.TypeOf(receiver)
	if !receiverType.AssignableTo(d.ownerType) {
		return nil, &ReceiverMismatchError{Want: d.ownerType, Got: receiverType}
	}

	return entry.Forward(receiver, args)
}

// Method returns the forwarding method installed under alias, bound to
// receiver. The binding is by name: redefining the alias later changes
// what the returned Method does.
func (d *TypeDelegator) Method(receiver interface{}, alias string) (Method, error) {
	if _, err := d.core.table.Get(alias); err != nil {
		return nil, err
	}
	return func(args ...interface{}) ([]interface{}, error) {
		return d.Invoke(receiver, alias, args...)
	}, nil
}

// HasDelegator reports whether a forwarding method is installed under
// alias.
func (d *TypeDelegator) HasDelegator(alias string) bool {
	return d.core.has(alias)
}

// Installed returns the aliases of all installed forwarding methods in
// sorted order.
func (d *TypeDelegator) Installed() []string {
	return d.core.installed()
}

// RemoveDelegator uninstalls the forwarding method under alias.
// Returns true if one was installed.
func (d *TypeDelegator) RemoveDelegator(alias string) bool {
	return d.core.table.Remove(alias)
}

// OwnerType returns the type this delegation scope was created for.
func (d *TypeDelegator) OwnerType() reflect.Type {
	return d.ownerType
}
