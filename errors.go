package teachta

import (
	"fmt"
	"reflect"
)

// UnresolvableAccessorError is returned when an accessor fails to resolve
// against the receiver at call time. Definition-time operations never
// raise it; delegations are not validated until the forwarder runs.
type UnresolvableAccessorError struct {
	Accessor string
	Receiver reflect.Type
	Reason   string
}

func (e *UnresolvableAccessorError) Error() string {
	receiver := "nil"
	if e.Receiver != nil {
		receiver = e.Receiver.String()
	}
	return fmt.Sprintf("cannot resolve accessor %q on %s: %s", e.Accessor, receiver, e.Reason)
}

// MethodNotFoundError is returned when the resolved target does not
// support the forwarded method name.
type MethodNotFoundError struct {
	Method string
	Target reflect.Type
}

func (e *MethodNotFoundError) Error() string {
	if e.Target == nil {
		return fmt.Sprintf("cannot forward %q to a nil target", e.Method)
	}
	return fmt.Sprintf("target %v has no method %q. Did the accessor resolve to the right object?", e.Target, e.Method)
}

// InvalidDelegationError is returned when a definition-time parameter is
// invalid.
type InvalidDelegationError struct {
	Reason string
}

func (e *InvalidDelegationError) Error() string {
	return fmt.Sprintf("invalid delegation: %s", e.Reason)
}

// ReceiverMismatchError is returned when Invoke is given a receiver that
// is not assignable to the delegator's owner type.
type ReceiverMismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *ReceiverMismatchError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("receiver must be assignable to %v, got %s", e.Want, got)
}

// ArgumentCountError is returned when the forwarded argument list does not
// match the target method's arity.
type ArgumentCountError struct {
	Method   string
	Target   reflect.Type
	Want     int
	Got      int
	Variadic bool
}

func (e *ArgumentCountError) Error() string {
	if e.Variadic {
		return fmt.Sprintf("method %q on %v takes at least %d arguments, got %d", e.Method, e.Target, e.Want, e.Got)
	}
	return fmt.Sprintf("method %q on %v takes %d arguments, got %d", e.Method, e.Target, e.Want, e.Got)
}

// ArgumentTypeError is returned when a forwarded argument cannot be
// adapted to the target parameter type.
type ArgumentTypeError struct {
	Method   string
	Position int
	Want     reflect.Type
	Got      reflect.Type
}

func (e *ArgumentTypeError) Error() string {
	got := "untyped nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("argument %d to %q must be %v, got %s", e.Position, e.Method, e.Want, got)
}

// ManifestError wraps a failure to load, validate, or apply a delegation
// manifest.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("delegation manifest: %v", e.Err)
	}
	return fmt.Sprintf("delegation manifest %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause error.
func (e *ManifestError) Unwrap() error {
	return e.Err
}
