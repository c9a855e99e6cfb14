package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// MisconductModule drives the rolling and end of era slashing workflows.
// It holds no state of its own; severity lives in the Misconduct value and
// balances in the ledger.
type MisconductModule[T types.Severity] struct {
	slasher StakingSlasher[T]
}

// NewMisconductModule returns an orchestrator slashing through ledger.
func NewMisconductModule[T types.Severity](ledger types.StakingLedger, conversion types.CurrencyToVote) MisconductModule[T] {
	return MisconductModule[T]{
		slasher: NewStakingSlasher[T](ledger, conversion),
	}
}

// WithHooks returns a copy of the module notifying hooks after every slash
// request.
func (m MisconductModule[T]) WithHooks(hooks types.MisconductHooks) MisconductModule[T] {
	m.slasher = m.slasher.WithHooks(hooks)
	return m
}

// RollingData reports misbehaved validators for a session and slashes each
// of them, in the given order, with the updated severity.
func (m MisconductModule[T]) RollingData(
	ctx context.Context,
	misconduct types.Misconduct[T],
	misbehaved []sdk.ValAddress,
	validators uint64,
	sessionIndex uint64,
) (types.Level, error) {
	misconduct.OnMisconduct(misbehaved, validators, sessionIndex)
	severity := misconduct.Severity()

	if err := m.slashAll(ctx, misbehaved, severity); err != nil {
		return 0, err
	}

	return classify(misconduct, severity)
}

// EraData reports misbehaved validators for a session without slashing.
func (m MisconductModule[T]) EraData(
	misconduct types.Misconduct[T],
	misbehaved []sdk.ValAddress,
	validators uint64,
	sessionIndex uint64,
) {
	misconduct.OnMisconduct(misbehaved, validators, sessionIndex)
}

// Slash slashes every validator that misbehaved during the era with the
// accumulated severity.
func (m MisconductModule[T]) Slash(ctx context.Context, end types.OnEndEra[T]) (types.Level, error) {
	severity := end.Severity()

	if err := m.slashAll(ctx, end.GetMisbehaved(), severity); err != nil {
		return 0, err
	}

	return classify[T](end, severity)
}

// classify rejects levels outside 1..4 returned by a registered policy.
func classify[T types.Severity](misconduct types.Misconduct[T], severity types.Fraction[T]) (types.Level, error) {
	level := misconduct.AsMisconductLevel(severity)
	if err := level.Validate(); err != nil {
		return 0, err
	}

	return level, nil
}

func (m MisconductModule[T]) slashAll(ctx context.Context, misbehaved []sdk.ValAddress, severity types.Fraction[T]) error {
	for _, who := range misbehaved {
		if _, err := m.slasher.Slash(ctx, who, severity); err != nil {
			return err
		}
	}

	return nil
}
