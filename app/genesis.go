package app

import (
	"encoding/json"
	"sort"

	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/initia-labs/misconduct/x/ledger"
	"github.com/initia-labs/misconduct/x/misconduct"
	"github.com/initia-labs/misconduct/x/misconduct/policy"
)

// GenesisState - The genesis state of the blockchain is represented here as a map of raw json
// messages key'd by a identifier string.
// The identifier is used to determine which module genesis information belongs
// to so it may be appropriately routed during init chain.
type GenesisState map[string]json.RawMessage

// BasicManager returns the basic managers of every module the app mounts.
func BasicManager() module.BasicManager {
	return module.NewBasicManager(
		ledger.AppModuleBasic{},
		misconduct.AppModuleBasic{},
	)
}

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState() GenesisState {
	return GenesisState(BasicManager().DefaultGenesis(nil))
}

func sortedPolicyNames() []string {
	names := make([]string, 0, len(policy.DefaultPolicies()))
	for name := range policy.DefaultPolicies() {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
