// noalias
// DONTCOVER
package types

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StakingLedger is the staking ledger the slashes are applied to. It owns all
// balance state; this module only reads slashable balances and requests
// slashes.
type StakingLedger interface {
	// SlashableBalance returns the balance subject to slashing, zero for an
	// unknown validator.
	SlashableBalance(ctx context.Context, valAddr sdk.ValAddress) (math.Int, error)

	// SlashValidator reduces the validator's stake by amount. Clamping on
	// insufficient funds is up to the ledger.
	SlashValidator(ctx context.Context, valAddr sdk.ValAddress, amount math.Int) error
}
