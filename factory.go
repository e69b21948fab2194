package teachta

import (
	"github.com/toutaio/toutago-teachta-method-delegator/registry"
)

// buildMethod synthesizes the forwarding body for one delegation spec.
//
// The returned forwarder resolves the accessor against its receiver on
// every call, then forwards the argument list, including a trailing
// callback value if one was supplied, to the target method. It returns
// exactly what the target call returns; failures from resolution or from
// the target itself surface unmodified, so a misconfigured delegation
// looks identical to calling the missing method directly.
//
// Installation of the forwarder is the caller's responsibility.
func buildMethod(cfg *config, cache *reflectionCache, owner string, spec *registry.Spec) registry.Forwarder {
	return func(receiver interface{}, args []interface{}) ([]interface{}, error) {
		target, err := resolveAccessor(cache, receiver, spec)
		if err != nil {
			return nil, err
		}
		return callTarget(cfg, owner, spec, target, args)
	}
}
