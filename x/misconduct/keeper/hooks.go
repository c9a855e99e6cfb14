package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	metrics "github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

var _ types.MisconductHooks = slashRecorder{}

// slashRecorder bookkeeps every slash request issued on behalf of a policy.
// The severity is read when the slash happens, after the report was applied.
type slashRecorder struct {
	k      Keeper
	policy types.Policy
}

func (r slashRecorder) AfterValidatorSlashed(ctx context.Context, valAddr sdk.ValAddress, amount math.Int) error {
	name, severity := r.policy.Name(), r.policy.Severity()

	count, err := r.k.SlashCounts.Get(ctx, valAddr)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		count = 0
	} else if err != nil {
		return err
	}

	if err := r.k.SlashCounts.Set(ctx, valAddr, count+1); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSlash,
			sdk.NewAttribute(types.AttributeKeyValidator, valAddr.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyPolicy, name),
			sdk.NewAttribute(types.AttributeKeySeverity, severity.String()),
		),
	)

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "slash"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.AttributeKeyPolicy, name),
		},
	)

	r.k.Logger(ctx).Debug(
		"slash requested",
		"validator", valAddr.String(),
		"amount", amount,
		"policy", name,
		"severity", severity.String(),
		"ratio", severity.LegacyDec().String(),
	)

	return nil
}
