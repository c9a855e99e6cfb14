package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/ledger/types"
)

// Keeper owns every balance the misconduct module can slash. A validator's
// own funds live on the account sharing its address bytes.
type Keeper struct {
	storeService corestoretypes.KVStoreService

	Schema       collections.Schema
	FreeBalances collections.Map[[]byte, math.Int]
	Exposures    collections.Map[[]byte, types.Exposure]
	TotalSlashed collections.Item[math.Int]
}

func NewKeeper(storeService corestoretypes.KVStoreService) *Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := &Keeper{
		storeService: storeService,
		FreeBalances: collections.NewMap(sb, types.FreeBalancesPrefix, "free_balances", collections.BytesKey, sdk.IntValue),
		Exposures:    collections.NewMap(sb, types.ExposuresPrefix, "exposures", collections.BytesKey, types.ExposureValue),
		TotalSlashed: collections.NewItem(sb, types.TotalSlashedKey, "total_slashed", sdk.IntValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// FreeBalance returns the free balance of addr, zero when unknown.
func (k Keeper) FreeBalance(ctx context.Context, addr sdk.AccAddress) (math.Int, error) {
	balance, err := k.FreeBalances.Get(ctx, addr)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	} else if err != nil {
		return math.Int{}, err
	}

	return balance, nil
}

// SetFreeBalance overwrites the free balance of addr.
func (k Keeper) SetFreeBalance(ctx context.Context, addr sdk.AccAddress, amount math.Int) error {
	if addr.Empty() {
		return types.ErrEmptyAddress
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrNegativeAmount.Wrapf("balance of %s", addr)
	}

	return k.FreeBalances.Set(ctx, addr, amount)
}

// Bond sets the validator's own stake. The stake is locked out of the
// validator account's free balance, so it must not exceed it.
func (k Keeper) Bond(ctx context.Context, valAddr sdk.ValAddress, own math.Int) error {
	if valAddr.Empty() {
		return types.ErrEmptyAddress
	}
	if own.IsNil() || own.IsNegative() {
		return types.ErrNegativeAmount.Wrap("own stake")
	}

	free, err := k.FreeBalance(ctx, sdk.AccAddress(valAddr))
	if err != nil {
		return err
	}
	if own.GT(free) {
		return types.ErrInsufficientBalance.Wrapf("bond %s exceeds free balance %s", own, free)
	}

	exposure, err := k.Exposures.Get(ctx, valAddr)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		exposure = types.NewExposure(own)
	} else if err != nil {
		return err
	}

	exposure.Own = own
	exposure.Recalculate()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBond,
			sdk.NewAttribute(types.AttributeKeyValidator, valAddr.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, own.String()),
		),
	)

	return k.Exposures.Set(ctx, valAddr, exposure)
}

// Nominate backs valAddr with value from the nominator's free balance. A
// repeated nomination replaces the previous value and keeps its position.
func (k Keeper) Nominate(ctx context.Context, nominator sdk.AccAddress, valAddr sdk.ValAddress, value math.Int) error {
	if nominator.Empty() || valAddr.Empty() {
		return types.ErrEmptyAddress
	}
	if value.IsNil() || value.IsNegative() {
		return types.ErrNegativeAmount.Wrap("nomination")
	}

	exposure, err := k.Exposures.Get(ctx, valAddr)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		return types.ErrNotBonded.Wrap(valAddr.String())
	} else if err != nil {
		return err
	}

	free, err := k.FreeBalance(ctx, nominator)
	if err != nil {
		return err
	}
	if value.GT(free) {
		return types.ErrInsufficientBalance.Wrapf("nomination %s exceeds free balance %s", value, free)
	}

	found := false
	for i := range exposure.Others {
		if exposure.Others[i].Who.Equals(nominator) {
			exposure.Others[i].Value = value
			found = true
			break
		}
	}
	if !found {
		exposure.Others = append(exposure.Others, types.IndividualExposure{Who: nominator, Value: value})
	}

	exposure.Recalculate()
	return k.Exposures.Set(ctx, valAddr, exposure)
}

// Exposure returns the stake backing valAddr.
func (k Keeper) Exposure(ctx context.Context, valAddr sdk.ValAddress) (types.Exposure, error) {
	return k.Exposures.Get(ctx, valAddr)
}

// SlashableBalance returns the total stake backing valAddr, zero for an
// unknown validator.
func (k Keeper) SlashableBalance(ctx context.Context, valAddr sdk.ValAddress) (math.Int, error) {
	exposure, err := k.Exposures.Get(ctx, valAddr)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	} else if err != nil {
		return math.Int{}, err
	}

	return exposure.Total, nil
}

// GetTotalSlashed returns the amount burned by slashes so far.
func (k Keeper) GetTotalSlashed(ctx context.Context) (math.Int, error) {
	total, err := k.TotalSlashed.Get(ctx)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	} else if err != nil {
		return math.Int{}, err
	}

	return total, nil
}
