// Package teachta provides method delegation for Go objects.
//
// Teachta (Irish: "delegate" or "messenger") lets an object expose methods
// whose implementation forwards the call to another object reached through
// an accessor, optionally under a different public name. Behavior is
// composed by reference to another object's API instead of interface
// re-implementation or embedding.
//
// # Features
//
//   - Instance-level delegation shared by all values of a type
//   - Single-object delegation bound to exactly one value
//   - Method-style and literal-style accessors, chosen at definition time
//   - Direct dispatch with a diagnosed fallback to call-by-name
//   - Argument-shape-preserving forwarding, callbacks included
//   - Global binding table for namespace-style targets
//   - Declarative TOML manifests and provider registration
//   - Thread-safe definition and invocation
//
// # Quick Start
//
// Create a delegation scope for a type and forward methods to a field:
//
//	delegator := teachta.ForType(&Container{})
//	delegator.DefineDelegators("Items", "Push", "Size")
//
//	c := &Container{Items: &ItemList{}}
//	delegator.Invoke(c, "Push", 1)
//	out, _ := delegator.Invoke(c, "Size")
//
// # Accessors
//
// The accessor is resolved anew on every call. How it resolves is decided
// once, when the delegation is defined:
//
//   - If the owner has a zero-argument method with the accessor's name
//     (or answers true through Responder), the accessor is invoked as a
//     method and its result is the target.
//   - Otherwise the accessor is a reference: an exported field on the
//     receiver, or a name in the global binding table. A leading "@"
//     restricts resolution to fields.
//
// # Single-object delegation
//
// Delegations can be bound to one object instead of a whole type:
//
//	registry := teachta.For(service)
//	registry.DefineDelegator("Backend", "Ping", "Health")
//	registry.Invoke("Health")
//
// # Dispatch
//
// Exported plain method names are called directly through reflection.
// When the resolved target lacks the method but implements MethodCaller,
// the forwarder emits one warning and completes the call through
// CallMethod. Names that cannot be a direct call token (unexported or
// operator-like) always use CallMethod, silently.
//
// # Error Handling
//
// Definition never validates reachability. A misconfigured delegation
// fails only when invoked, with the same error the caller would see had
// they called the missing method on the mis-specified target themselves:
//
//	out, err := delegator.Invoke(c, "Size")
//	var notFound *teachta.MethodNotFoundError
//	if errors.As(err, &notFound) {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Definition and invocation are goroutine-safe. Target resolution is never
// cached, so concurrent calls observe accessor changes in order.
package teachta
