package types

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MisconductHooks is notified about every slash request issued.
type MisconductHooks interface {
	AfterValidatorSlashed(ctx context.Context, valAddr sdk.ValAddress, amount math.Int) error
}

// combine multiple misconduct hooks, all hook functions are run in array sequence
var _ MisconductHooks = MultiMisconductHooks{}

type MultiMisconductHooks []MisconductHooks

func NewMultiMisconductHooks(hooks ...MisconductHooks) MultiMisconductHooks {
	return hooks
}

func (h MultiMisconductHooks) AfterValidatorSlashed(ctx context.Context, valAddr sdk.ValAddress, amount math.Int) error {
	for i := range h {
		if err := h[i].AfterValidatorSlashed(ctx, valAddr, amount); err != nil {
			return err
		}
	}
	return nil
}
