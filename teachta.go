// Package teachta provides method delegation for Go objects.
//
// Teachta (Irish: "delegate" or "messenger") lets an object expose methods
// whose implementation forwards the call to another object reached through
// an accessor, optionally under a different public name.
//
// Basic usage:
//
//	// Grant a type the ability to forward methods to its Items field
//	delegator := teachta.ForType(&Container{})
//	delegator.DefineDelegators("Items", "Push", "Size")
//
//	// Forwarded calls resolve the accessor on every invocation
//	results, err := delegator.Invoke(container, "Push", 42)
package teachta

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/toutaio/toutago-teachta-method-delegator/registry"
)

// Method is a generated forwarding method bound to one receiver. Invoking
// it resolves the accessor at that moment, forwards the arguments (the
// trailing argument may be a callback function value) to the target method,
// and returns exactly what the target call returned.
type Method func(args ...interface{}) ([]interface{}, error)

// MethodCaller is the generic call-by-name primitive. Targets implementing
// it can receive forwarded calls for names that are not part of their
// public method set, including operator-like or unexported names.
type MethodCaller interface {
	CallMethod(name string, args ...interface{}) ([]interface{}, error)
}

// Responder is an optional probe consulted at definition time for owners
// whose accessor methods are not visible in their static method set.
type Responder interface {
	RespondsTo(name string) bool
}

// ObjectIdentifier is the core identity accessor. It is reserved and is
// never installed as a delegator by batch definition.
type ObjectIdentifier interface {
	ObjectID() uint64
}

// Reserved identity and dispatch primitive names. Forwarding these would
// break reflection on the owner, so batch definition skips them.
const (
	reservedCallMethod = "CallMethod"
	reservedRespondsTo = "RespondsTo"
	reservedObjectID   = "ObjectID"
)

func defaultReservedNames() map[string]struct{} {
	return map[string]struct{}{
		reservedCallMethod: {},
		reservedRespondsTo: {},
		reservedObjectID:   {},
	}
}

// Delegator is the definition surface shared by TypeDelegator and
// ObjectDelegator. Providers and manifests target this interface so one
// declaration set can be applied to either delegation scope.
type Delegator interface {
	// DefineDelegator installs a forwarder for method reachable through
	// accessor, optionally under an alias. Returns the installed alias.
	DefineDelegator(accessor, method string, alias ...string) (string, error)

	// DefineDelegators installs one forwarder per method under its own
	// name, skipping reserved identity/dispatch names.
	DefineDelegators(accessor string, methods ...string) error

	// Delegate installs forwarders for every accessor -> methods pair in
	// the mapping, each under the method's own name.
	Delegate(mapping map[string][]string) error
}

// delegatorCore carries the pieces shared by both delegation scopes: the
// dispatch table, the definition-time probe subject, and configuration.
type delegatorCore struct {
	owner     string
	prototype interface{}
	table     *registry.Registry
	cache     *reflectionCache
	cfg       *config
}

func newDelegatorCore(owner string, prototype interface{}, options []Option) delegatorCore {
	return delegatorCore{
		owner:     owner,
		prototype: prototype,
		table:     registry.New(),
		cache:     newReflectionCache(),
		cfg:       applyOptions(options),
	}
}

// define builds one forwarder and installs it. Reachability of the accessor
// or the target method is not validated here; a misconfigured delegation
// only surfaces when the generated method is called.
func (c *delegatorCore) define(accessor, method, alias, definedAt string) (string, error) {
	accessor = strings.TrimSpace(accessor)
	method = strings.TrimSpace(method)
	alias = strings.TrimSpace(alias)

	if accessor == "" {
		return "", &InvalidDelegationError{Reason: "accessor cannot be empty"}
	}
	if method == "" {
		return "", &InvalidDelegationError{Reason: "method name cannot be empty"}
	}
	if alias == "" {
		alias = method
	}

	spec := &registry.Spec{
		Accessor:  accessor,
		Kind:      probeAccessorKind(c.cache, c.prototype, accessor).String(),
		Method:    method,
		Alias:     alias,
		Direct:    directlyDispatchable(method),
		DefinedAt: definedAt,
	}

	entry := &registry.Entry{
		Spec:    spec,
		Forward: buildMethod(c.cfg, c.cache, c.owner, spec),
	}
	if err := c.table.Install(entry); err != nil {
		return "", err
	}

	return alias, nil
}

// defineBatch installs one forwarder per method under the default alias.
// Reserved identity/dispatch names are skipped silently.
func (c *delegatorCore) defineBatch(accessor string, methods []string, definedAt string) error {
	for _, method := range methods {
		if _, reserved := c.cfg.reserved[strings.TrimSpace(method)]; reserved {
			continue
		}
		if _, err := c.define(accessor, method, "", definedAt); err != nil {
			return err
		}
	}
	return nil
}

// defineMapping expands an accessor -> methods mapping into individual
// definitions, each under the method's own name.
func (c *delegatorCore) defineMapping(mapping map[string][]string, definedAt string) error {
	for accessor, methods := range mapping {
		for _, method := range methods {
			if _, err := c.define(accessor, method, "", definedAt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *delegatorCore) installed() []string {
	return c.table.Aliases()
}

func (c *delegatorCore) has(alias string) bool {
	return c.table.Has(alias)
}

// callerLocation reports the file:line of the frame skip levels above the
// caller. Used to attribute diagnostics to the definition site.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
