package keeper

import (
	"context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// StakingSlasher turns a severity into a slash amount and applies it through
// the staking ledger.
type StakingSlasher[T types.Severity] struct {
	ledger     types.StakingLedger
	conversion types.CurrencyToVote
	hooks      types.MisconductHooks
}

// NewStakingSlasher returns a slasher computing in the extended domain
// reached through conversion.
func NewStakingSlasher[T types.Severity](ledger types.StakingLedger, conversion types.CurrencyToVote) StakingSlasher[T] {
	return StakingSlasher[T]{
		ledger:     ledger,
		conversion: conversion,
	}
}

// WithHooks returns a copy of the slasher notifying hooks after every slash
// request.
func (s StakingSlasher[T]) WithHooks(hooks types.MisconductHooks) StakingSlasher[T] {
	s.hooks = hooks
	return s
}

// ComputeSlash returns floor(balance * severity.Denominator() /
// severity.Numerator()). The product saturates at the extended maximum and a
// zero divisor yields zero, so it is defined for every input.
func (s StakingSlasher[T]) ComputeSlash(balance math.Int, severity types.Fraction[T]) math.Int {
	extended := s.conversion.ToExtended(balance)
	d := types.ExtendedFromUint64(uint64(severity.Denominator()))
	n := types.ExtendedFromUint64(uint64(severity.Numerator()))

	product := types.SaturatingMul(extended, d)
	slash, ok := types.CheckedDiv(product, n)
	if !ok {
		return math.ZeroInt()
	}

	return s.conversion.ToBalance(slash)
}

// Slash reads the slashable balance of who, and requests the ledger to slash
// the amount computed for severity. The request is issued even when the
// amount is zero; the ledger decides what a zero slash means.
func (s StakingSlasher[T]) Slash(ctx context.Context, who sdk.ValAddress, severity types.Fraction[T]) (math.Int, error) {
	balance, err := s.ledger.SlashableBalance(ctx, who)
	if err != nil {
		return math.Int{}, err
	}

	amount := s.ComputeSlash(balance, severity)
	if err := s.ledger.SlashValidator(ctx, who, amount); err != nil {
		return math.Int{}, err
	}

	if s.hooks != nil {
		if err := s.hooks.AfterValidatorSlashed(ctx, who, amount); err != nil {
			return math.Int{}, err
		}
	}

	return amount, nil
}
