package keeper

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/ledger/types"
)

// InitGenesis sets the ledger balances and exposures from genesis.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	for _, balance := range data.Balances {
		if err := k.SetFreeBalance(ctx, balance.Address, balance.Amount); err != nil {
			return err
		}
	}

	for _, entry := range data.Exposures {
		if err := k.Exposures.Set(ctx, entry.Validator, entry.Exposure); err != nil {
			return err
		}
	}

	totalSlashed := data.TotalSlashed
	if totalSlashed.IsNil() {
		totalSlashed = math.ZeroInt()
	}

	return k.TotalSlashed.Set(ctx, totalSlashed)
}

// ExportGenesis returns the ledger state, ordered by address.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.DefaultGenesisState()

	err := k.FreeBalances.Walk(ctx, nil, func(addr []byte, amount math.Int) (stop bool, err error) {
		genState.Balances = append(genState.Balances, types.Balance{Address: addr, Amount: amount})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Exposures.Walk(ctx, nil, func(valAddr []byte, exposure types.Exposure) (stop bool, err error) {
		genState.Exposures = append(genState.Exposures, types.ExposureEntry{Validator: sdk.ValAddress(valAddr), Exposure: exposure})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	genState.TotalSlashed, err = k.GetTotalSlashed(ctx)
	if err != nil {
		return nil, err
	}

	return genState, nil
}
