package teachta

import (
	"fmt"
	"reflect"
)

// Provider encapsulates a related group of delegation definitions so they
// can be applied to a delegation scope as one unit.
//
// Example:
//
//	type StorageDelegations struct{}
//
//	func (p *StorageDelegations) Register(d teachta.Delegator) error {
//	    return d.DefineDelegators("Store", "Get", "Put", "List")
//	}
type Provider interface {
	Register(d Delegator) error
}

// ConditionalProvider is an optional interface for providers that should
// only register under some condition.
//
// Example:
//
//	func (p *CacheDelegations) ShouldRegister(d teachta.Delegator) bool {
//	    return p.cacheEnabled
//	}
type ConditionalProvider interface {
	Provider
	ShouldRegister(d Delegator) bool
}

// RegisterProviders applies each provider to the delegation scope.
// Conditional providers whose condition is false are skipped, as are
// duplicate providers of the same concrete type.
//
// Example:
//
//	err := teachta.RegisterProviders(delegator,
//	    &StorageDelegations{},
//	    &CacheDelegations{},
//	)
func RegisterProviders(d Delegator, providers ...Provider) error {
	if d == nil {
		return fmt.Errorf("delegator cannot be nil")
	}

	seen := make(map[reflect.Type]bool)
	for _, provider := range providers {
		if provider == nil {
			return fmt.Errorf("provider cannot be nil")
		}

		if conditional, ok := provider.(ConditionalProvider); ok {
			if !conditional.ShouldRegister(d) {
				continue
			}
		}

		providerType := reflect.TypeOf(provider)
		if seen[providerType] {
			continue
		}

		if err := provider.Register(d); err != nil {
			return fmt.Errorf("provider registration failed: %w", err)
		}
		seen[providerType] = true
	}

	return nil
}
