package types

import (
	"github.com/initia-labs/misconduct/internal/jsoncoll"
)

var (
	ParamsValue      = jsoncoll.NewValueCodec[Params]("misconduct/Params")
	PolicyStateValue = jsoncoll.NewValueCodec[PolicyState]("misconduct/PolicyState")
)

// GenesisState defines the misconduct module's genesis state.
type GenesisState struct {
	Params       Params             `json:"params" yaml:"params"`
	PolicyStates []PolicyStateEntry `json:"policy_states" yaml:"policy_states"`
}

// NewGenesisState creates a new GenesisState object
func NewGenesisState(params Params, policyStates []PolicyStateEntry) *GenesisState {
	return &GenesisState{
		Params:       params,
		PolicyStates: policyStates,
	}
}

// DefaultGenesisState - default GenesisState used by Cosmos Hub
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		PolicyStates: []PolicyStateEntry{},
	}
}

// ValidateGenesis validates the misconduct genesis parameters
func ValidateGenesis(data GenesisState) error {
	if err := data.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(data.PolicyStates))
	for _, entry := range data.PolicyStates {
		if entry.Policy == "" {
			return ErrInvalidGenesis.Wrap("empty policy name")
		}
		if _, ok := seen[entry.Policy]; ok {
			return ErrInvalidGenesis.Wrapf("duplicated policy %s", entry.Policy)
		}
		seen[entry.Policy] = struct{}{}

		if err := entry.State.Validate(); err != nil {
			return err
		}
	}

	return nil
}
