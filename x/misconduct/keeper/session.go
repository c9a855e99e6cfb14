package keeper

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"cosmossdk.io/collections"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// ReportMisconduct feeds a session report to the named policy. In rolling
// mode every reported validator is slashed right away; in end of era mode
// the report only accumulates until EndEra. The returned level classifies
// the policy severity after the report.
func (k Keeper) ReportMisconduct(
	ctx context.Context,
	policyName string,
	misbehaved []sdk.ValAddress,
	totalValidators uint64,
	sessionIndex uint64,
) (types.Level, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "report_misconduct")

	params, err := k.Params.Get(ctx)
	if err != nil {
		return 0, err
	}

	policy, err := k.loadPolicy(ctx, policyName, params)
	if err != nil {
		return 0, err
	}

	// nothing is written unless every slash and the policy state succeed
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()

	var level types.Level
	switch params.SlashMode {
	case types.SlashModeEndOfEra:
		k.misconductModule(params, policy).EraData(policy, misbehaved, totalValidators, sessionIndex)
		level, err = classify[uint64](policy, policy.Severity())
		if err != nil {
			return 0, err
		}
	default:
		level, err = k.misconductModule(params, policy).RollingData(cacheCtx, policy, misbehaved, totalValidators, sessionIndex)
		if err != nil {
			return 0, err
		}
	}

	if err := k.PolicyStates.Set(cacheCtx, policyName, policy.ExportState()); err != nil {
		return 0, err
	}

	k.emitLevel(cacheCtx, policyName, policy, level, sessionIndex, len(misbehaved))
	write()

	return level, nil
}

// EndEra closes the current era for every registered policy, in sorted name
// order. In end of era mode each policy with misbehaved validators is
// slashed first. Policy state is then reset according to the params.
func (k Keeper) EndEra(ctx context.Context) (map[string]types.Level, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "end_era")

	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	// the era either ends for every policy or for none of them
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()

	levels := make(map[string]types.Level)
	for _, name := range k.PolicyNames() {
		policy, err := k.loadPolicy(cacheCtx, name, params)
		if err != nil {
			return nil, err
		}

		if params.SlashMode == types.SlashModeEndOfEra && len(policy.GetMisbehaved()) > 0 {
			level, err := k.misconductModule(params, policy).Slash(cacheCtx, policy)
			if err != nil {
				return nil, err
			}

			levels[name] = level
			k.emitLevel(cacheCtx, name, policy, level, policy.ExportState().LastSession, len(policy.GetMisbehaved()))
		}

		policy.OnEraEnd(params.ResetOnEraEnd)
		if err := k.PolicyStates.Set(cacheCtx, name, policy.ExportState()); err != nil {
			return nil, err
		}
	}
	write()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEra,
			sdk.NewAttribute(types.AttributeKeyMode, string(params.SlashMode)),
			sdk.NewAttribute(types.AttributeKeyPolicy, strings.Join(k.PolicyNames(), ",")),
		),
	)

	return levels, nil
}

// SlashEndOfEra reports a session to the named policy and immediately
// slashes the era's misbehaved validators, whatever the configured mode.
// The policy's era state is reset afterwards like in EndEra.
func (k Keeper) SlashEndOfEra(
	ctx context.Context,
	policyName string,
	misbehaved []sdk.ValAddress,
	totalValidators uint64,
	sessionIndex uint64,
) (types.Level, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "slash_end_of_era")

	params, err := k.Params.Get(ctx)
	if err != nil {
		return 0, err
	}

	policy, err := k.loadPolicy(ctx, policyName, params)
	if err != nil {
		return 0, err
	}

	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()

	policy.OnMisconduct(misbehaved, totalValidators, sessionIndex)
	level, err := k.misconductModule(params, policy).Slash(cacheCtx, policy)
	if err != nil {
		return 0, err
	}

	k.emitLevel(cacheCtx, policyName, policy, level, sessionIndex, len(policy.GetMisbehaved()))

	policy.OnEraEnd(params.ResetOnEraEnd)
	if err := k.PolicyStates.Set(cacheCtx, policyName, policy.ExportState()); err != nil {
		return 0, err
	}
	write()

	return level, nil
}

// GetPolicy returns the named policy loaded with its persisted state.
func (k Keeper) GetPolicy(ctx context.Context, policyName string) (types.Policy, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return nil, err
	}

	return k.loadPolicy(ctx, policyName, params)
}

func (k Keeper) loadPolicy(ctx context.Context, name string, params types.Params) (types.Policy, error) {
	constructor, ok := k.policies[name]
	if !ok {
		return nil, types.ErrUnknownPolicy.Wrap(name)
	}

	policy := constructor(params)

	state, err := k.PolicyStates.Get(ctx, name)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		return policy, nil
	} else if err != nil {
		return nil, err
	}

	policy.ImportState(state)
	return policy, nil
}

func (k Keeper) misconductModule(params types.Params, policy types.Policy) MisconductModule[uint64] {
	recorder := slashRecorder{k: k, policy: policy}
	return NewMisconductModule[uint64](k.ledger, params.Conversion()).
		WithHooks(types.NewMultiMisconductHooks(recorder, k.Hooks()))
}

func (k Keeper) emitLevel(ctx context.Context, name string, policy types.Policy, level types.Level, sessionIndex uint64, misbehaved int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLevel,
			sdk.NewAttribute(types.AttributeKeyPolicy, name),
			sdk.NewAttribute(types.AttributeKeySeverity, policy.Severity().String()),
			sdk.NewAttribute(types.AttributeKeyLevel, level.String()),
			sdk.NewAttribute(types.AttributeKeySession, strconv.FormatUint(sessionIndex, 10)),
			sdk.NewAttribute(types.AttributeKeyMisbehaved, strconv.Itoa(misbehaved)),
		),
	)

	k.Logger(ctx).Info(
		"misconduct level",
		"policy", name,
		"severity", policy.Severity().String(),
		"level", level.String(),
	)
}
