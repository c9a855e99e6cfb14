package types

import (
	"github.com/holiman/uint256"
)

// maxExtendedBalance is 2^128-1, the ceiling of the extended-precision domain
// used while computing slashes.
var maxExtendedBalance = uint256.Int{^uint64(0), ^uint64(0), 0, 0}

// MaxExtendedBalance returns a fresh copy of the largest extended value.
func MaxExtendedBalance() *uint256.Int {
	return new(uint256.Int).Set(&maxExtendedBalance)
}

// ExtendedFromUint64 widens v into the extended domain.
func ExtendedFromUint64(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// ClampExtended caps v at MaxExtendedBalance.
func ClampExtended(v *uint256.Int) *uint256.Int {
	if v.Gt(&maxExtendedBalance) {
		return MaxExtendedBalance()
	}

	return new(uint256.Int).Set(v)
}

// SaturatingMul returns a*b, or MaxExtendedBalance if the product does not
// fit in 128 bits.
func SaturatingMul(a, b *uint256.Int) *uint256.Int {
	product, overflow := new(uint256.Int).MulOverflow(ClampExtended(a), ClampExtended(b))
	if overflow || product.Gt(&maxExtendedBalance) {
		return MaxExtendedBalance()
	}

	return product
}

// CheckedDiv returns floor(a/b) and false when b is zero.
func CheckedDiv(a, b *uint256.Int) (*uint256.Int, bool) {
	if b.IsZero() {
		return nil, false
	}

	return new(uint256.Int).Div(a, b), true
}
