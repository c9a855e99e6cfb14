package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/ledger/types"
)

// SlashValidator burns up to amount from the stake backing valAddr.
//
// The slash is capped by the exposure total. The validator's own stake is
// slashed first, from the validator account's free balance; whatever the
// account cannot cover is added to the remainder, which is spread over the
// nominators as floor(rest * value / total) in nomination order. Each account
// loses at most its free balance. Slashing an unknown validator is a no-op.
func (k Keeper) SlashValidator(ctx context.Context, valAddr sdk.ValAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrNegativeAmount.Wrapf("slash of %s", valAddr)
	}

	exposure, err := k.Exposures.Get(ctx, valAddr)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		k.Logger(ctx).Info("ignored slash of an unbonded validator", "validator", valAddr.String(), "amount", amount)
		return nil
	} else if err != nil {
		return err
	}

	slash := math.MinInt(amount, exposure.Total)
	if !slash.IsPositive() {
		return nil
	}

	ownSlash := math.MinInt(exposure.Own, slash)
	ownSlashed, err := k.burn(ctx, valAddr, sdk.AccAddress(valAddr), ownSlash)
	if err != nil {
		return err
	}
	exposure.Own = exposure.Own.Sub(ownSlashed)

	burned := ownSlashed
	rest := slash.Sub(ownSlashed)
	if rest.IsPositive() {
		total := exposure.Total
		for i, other := range exposure.Others {
			share := rest.Mul(other.Value).Quo(total)
			share = math.MinInt(share, other.Value)

			slashed, err := k.burn(ctx, valAddr, other.Who, share)
			if err != nil {
				return err
			}

			exposure.Others[i].Value = other.Value.Sub(slashed)
			burned = burned.Add(slashed)
		}
	}

	exposure.Recalculate()
	if err := k.Exposures.Set(ctx, valAddr, exposure); err != nil {
		return err
	}

	totalSlashed, err := k.GetTotalSlashed(ctx)
	if err != nil {
		return err
	}
	if err := k.TotalSlashed.Set(ctx, totalSlashed.Add(burned)); err != nil {
		return err
	}

	k.Logger(ctx).Info(
		"validator slashed",
		"validator", valAddr.String(),
		"requested", amount,
		"burned", burned,
	)

	return nil
}

// burn removes up to amount from the free balance of addr and returns what
// was actually removed.
func (k Keeper) burn(ctx context.Context, valAddr sdk.ValAddress, addr sdk.AccAddress, amount math.Int) (math.Int, error) {
	if !amount.IsPositive() {
		return math.ZeroInt(), nil
	}

	free, err := k.FreeBalance(ctx, addr)
	if err != nil {
		return math.Int{}, err
	}

	slashed := math.MinInt(free, amount)
	if err := k.FreeBalances.Set(ctx, addr, free.Sub(slashed)); err != nil {
		return math.Int{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSlash,
			sdk.NewAttribute(types.AttributeKeyValidator, valAddr.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, addr.String()),
			sdk.NewAttribute(types.AttributeKeyRequested, amount.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, slashed.String()),
		),
	)

	return slashed, nil
}
