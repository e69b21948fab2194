package teachta

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/toutaio/toutago-teachta-method-delegator/registry"
)

// AccessorKind tells how the delegation target is obtained at call time.
type AccessorKind string

const (
	// AccessorMethod invokes a zero-argument method named after the
	// accessor on the receiver and delegates to its result.
	AccessorMethod AccessorKind = "method"

	// AccessorLiteral treats the accessor as a reference: an exported
	// field on the receiver, or failing that a name in the global
	// binding table.
	AccessorLiteral AccessorKind = "literal"
)

// String returns the string representation of the accessor kind.
func (k AccessorKind) String() string {
	return string(k)
}

// probeAccessorKind decides, at definition time, how an accessor will
// resolve. The decision is frozen into the registry.Spec record: an accessor method added
// to the owner after the delegation was defined does not change an
// already-installed forwarder.
func probeAccessorKind(cache *reflectionCache, prototype interface{}, accessor string) AccessorKind {
	// A leading "@" is always an explicit field reference.
	if strings.HasPrefix(accessor, "@") {
		return AccessorLiteral
	}

	if t := reflect.TypeOf(prototype); t != nil && cache.hasZeroArgMethod(t, accessor) {
		return AccessorMethod
	}

	// Owners without a static method set entry may still answer the
	// accessor through their dynamic dispatch primitive.
	if responder, ok := prototype.(Responder); ok && responder.RespondsTo(accessor) {
		return AccessorMethod
	}

	return AccessorLiteral
}

// resolveAccessor obtains the delegation target from the receiver.
// Resolution happens anew on every call; the result is never cached.
func resolveAccessor(cache *reflectionCache, receiver interface{}, spec *registry.Spec) (interface{}, error) {
	switch AccessorKind(spec.Kind) {
	case AccessorMethod:
		return resolveMethodAccessor(receiver, spec)
	case AccessorLiteral:
		return resolveLiteralAccessor(cache, receiver, spec)
	default:
		return nil, &UnresolvableAccessorError{
			Accessor: spec.Accessor,
			Receiver: reflect.TypeOf(receiver),
			Reason:   fmt.Sprintf("unknown accessor kind %q", spec.Kind),
		}
	}
}

// resolveMethodAccessor invokes the accessor as a zero-argument method on
// the receiver. Receivers whose accessor is only reachable through their
// dynamic dispatch primitive are resolved via CallMethod.
func resolveMethodAccessor(receiver interface{}, spec *registry.Spec) (interface{}, error) {
	if receiver == nil {
		return nil, &UnresolvableAccessorError{
			Accessor: spec.Accessor,
			Reason:   "receiver is nil",
		}
	}

	m := reflect.ValueOf(receiver).MethodByName(spec.Accessor)
	if m.IsValid() && m.Type().NumIn() == 0 {
		return accessorReturn(m.Call(nil), receiver, spec)
	}

	if caller, ok := receiver.(MethodCaller); ok {
		out, err := caller.CallMethod(spec.Accessor)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			return nil, &UnresolvableAccessorError{
				Accessor: spec.Accessor,
				Receiver: reflect.TypeOf(receiver),
				Reason:   "accessor returned no value",
			}
		}
		return out[0], nil
	}

	return nil, &UnresolvableAccessorError{
		Accessor: spec.Accessor,
		Receiver: reflect.TypeOf(receiver),
		Reason:   "no zero-argument accessor method",
	}
}

// accessorReturn extracts the target from an accessor method's return
// values. Accessors declared as (T, error) propagate their error.
func accessorReturn(out []reflect.Value, receiver interface{}, spec *registry.Spec) (interface{}, error) {
	if len(out) == 0 {
		return nil, &UnresolvableAccessorError{
			Accessor: spec.Accessor,
			Receiver: reflect.TypeOf(receiver),
			Reason:   "accessor method returns nothing",
		}
	}
	if len(out) > 1 {
		if err, ok := out[len(out)-1].Interface().(error); ok && err != nil {
			return nil, err
		}
	}
	return out[0].Interface(), nil
}

// resolveLiteralAccessor treats the accessor as a reference. The name is
// looked up as an exported field on the receiver first; accessors without
// the explicit "@" marker fall back to the global binding table, the way a
// bare constant reference would resolve against the enclosing namespace.
func resolveLiteralAccessor(cache *reflectionCache, receiver interface{}, spec *registry.Spec) (interface{}, error) {
	explicit := strings.HasPrefix(spec.Accessor, "@")
	name := strings.TrimPrefix(spec.Accessor, "@")

	v := reflect.ValueOf(receiver)
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		if index, ok := cache.exportedField(v.Type(), name); ok {
			return v.Field(index).Interface(), nil
		}
	}

	if explicit {
		return nil, &UnresolvableAccessorError{
			Accessor: spec.Accessor,
			Receiver: reflect.TypeOf(receiver),
			Reason:   fmt.Sprintf("no exported field %q", name),
		}
	}

	if value, ok := Lookup(name); ok {
		return value, nil
	}

	return nil, &UnresolvableAccessorError{
		Accessor: spec.Accessor,
		Receiver: reflect.TypeOf(receiver),
		Reason:   "no matching field or global binding",
	}
}
