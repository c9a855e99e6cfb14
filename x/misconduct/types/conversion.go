package types

import (
	"cosmossdk.io/math"
	"github.com/holiman/uint256"
)

// CurrencyToVote converts between chain balances and the extended domain the
// slash is computed in.
type CurrencyToVote interface {
	ToExtended(balance math.Int) *uint256.Int
	ToBalance(value *uint256.Int) math.Int
}

var (
	_ CurrencyToVote = U64CurrencyToVote{}
	_ CurrencyToVote = U128CurrencyToVote{}
)

// U64CurrencyToVote routes every conversion through a 64-bit intermediate.
// Balances above 2^64-1 saturate, so ToBalance(ToExtended(b)) equals
// min(b, 2^64-1) and the precision lost is exactly b - (2^64-1) for larger
// balances. Chains whose balances can exceed 2^64 should select
// U128CurrencyToVote instead.
type U64CurrencyToVote struct{}

func (U64CurrencyToVote) ToExtended(balance math.Int) *uint256.Int {
	if balance.IsNil() || !balance.IsPositive() {
		return uint256.NewInt(0)
	}
	if !balance.IsUint64() {
		return uint256.NewInt(^uint64(0))
	}

	return uint256.NewInt(balance.Uint64())
}

func (U64CurrencyToVote) ToBalance(value *uint256.Int) math.Int {
	if !value.IsUint64() {
		return math.NewIntFromUint64(^uint64(0))
	}

	return math.NewIntFromUint64(value.Uint64())
}

// U128CurrencyToVote converts losslessly up to 2^128-1 and saturates above.
type U128CurrencyToVote struct{}

func (U128CurrencyToVote) ToExtended(balance math.Int) *uint256.Int {
	if balance.IsNil() || !balance.IsPositive() {
		return uint256.NewInt(0)
	}

	v, overflow := uint256.FromBig(balance.BigInt())
	if overflow {
		return MaxExtendedBalance()
	}

	return ClampExtended(v)
}

func (U128CurrencyToVote) ToBalance(value *uint256.Int) math.Int {
	return math.NewIntFromBigInt(ClampExtended(value).ToBig())
}
