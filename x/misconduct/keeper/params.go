package keeper

import (
	"context"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// GetParams returns the current misconduct parameters.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}

// SetParams sets the misconduct parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	return k.Params.Set(ctx, params)
}

// UpdateParams sets the parameters on behalf of the module authority.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if k.authority != authority {
		return types.ErrInvalidSigner.Wrapf("invalid authority; expected %s, got %s", k.authority, authority)
	}

	return k.SetParams(ctx, params)
}
