package keeper

import (
	"context"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// InitGenesis sets the misconduct params and policy states from genesis.
// Every policy state must belong to a registered policy.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return err
	}

	for _, entry := range data.PolicyStates {
		if _, ok := k.policies[entry.Policy]; !ok {
			return types.ErrUnknownPolicy.Wrap(entry.Policy)
		}

		if err := k.PolicyStates.Set(ctx, entry.Policy, entry.State); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the misconduct params and policy states, ordered by
// policy name.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	policyStates := []types.PolicyStateEntry{}
	err = k.PolicyStates.Walk(ctx, nil, func(name string, state types.PolicyState) (stop bool, err error) {
		policyStates = append(policyStates, types.PolicyStateEntry{Policy: name, State: state})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return types.NewGenesisState(params, policyStates), nil
}
