package types

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Balance is the free balance of a single account.
type Balance struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Amount  math.Int       `json:"amount" yaml:"amount"`
}

// ExposureEntry pairs a validator with its exposure.
type ExposureEntry struct {
	Validator sdk.ValAddress `json:"validator" yaml:"validator"`
	Exposure  Exposure       `json:"exposure" yaml:"exposure"`
}

// GenesisState defines the ledger module's genesis state.
type GenesisState struct {
	Balances     []Balance       `json:"balances" yaml:"balances"`
	Exposures    []ExposureEntry `json:"exposures" yaml:"exposures"`
	TotalSlashed math.Int        `json:"total_slashed" yaml:"total_slashed"`
}

// DefaultGenesisState returns an empty ledger.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Balances:     []Balance{},
		Exposures:    []ExposureEntry{},
		TotalSlashed: math.ZeroInt(),
	}
}

// ValidateGenesis validates the ledger genesis state
func ValidateGenesis(data GenesisState) error {
	seen := make(map[string]struct{}, len(data.Balances))
	for _, balance := range data.Balances {
		if balance.Address.Empty() {
			return ErrEmptyAddress.Wrap("balance")
		}
		if balance.Amount.IsNil() || balance.Amount.IsNegative() {
			return ErrNegativeAmount.Wrapf("balance of %s", balance.Address)
		}

		key := string(balance.Address)
		if _, ok := seen[key]; ok {
			return ErrInvalidGenesis.Wrapf("duplicated balance %s", balance.Address)
		}
		seen[key] = struct{}{}
	}

	seen = make(map[string]struct{}, len(data.Exposures))
	for _, entry := range data.Exposures {
		if entry.Validator.Empty() {
			return ErrEmptyAddress.Wrap("validator")
		}

		key := string(entry.Validator)
		if _, ok := seen[key]; ok {
			return ErrInvalidGenesis.Wrapf("duplicated exposure %s", entry.Validator)
		}
		seen[key] = struct{}{}

		if err := entry.Exposure.Validate(); err != nil {
			return err
		}
	}

	if !data.TotalSlashed.IsNil() && data.TotalSlashed.IsNegative() {
		return ErrNegativeAmount.Wrap("total slashed")
	}

	return nil
}
