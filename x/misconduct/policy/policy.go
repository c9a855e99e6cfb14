package policy

import (
	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// DefaultPolicies returns the constructors of every built-in policy keyed by
// registry name.
func DefaultPolicies() map[string]types.PolicyConstructor {
	return map[string]types.PolicyConstructor{
		UnresponsiveName: NewUnresponsive,
		EquivocationName: NewEquivocation,
	}
}
