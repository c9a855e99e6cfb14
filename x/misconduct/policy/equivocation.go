package policy

import (
	"math/big"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// EquivocationName is the registry name of the Equivocation policy.
const EquivocationName = "equivocation"

var (
	_ types.Policy = &Equivocation{}

	equivocationFull = types.NewFraction[uint64](1, 1)

	equivocationLevelOne   = types.NewFraction[uint64](1, 100)
	equivocationLevelTwo   = types.NewFraction[uint64](1, 10)
	equivocationLevelThree = types.NewFraction[uint64](1, 2)
)

// Equivocation penalizes validators that signed conflicting blocks. The
// session severity is min(3k/n, 1)^2, so isolated equivocations stay cheap
// while a coordinated third of the set loses everything.
type Equivocation struct {
	base
}

// NewEquivocation returns a fresh Equivocation policy.
func NewEquivocation(params types.Params) types.Policy {
	return &Equivocation{
		base: newBase(EquivocationName, params, equivocationEstimate),
	}
}

func equivocationEstimate(k, n uint64) types.Fraction[uint64] {
	if k == 0 || n == 0 {
		return zeroSeverity()
	}

	scale := new(big.Int).Mul(big.NewInt(3), bigUint(k))
	total := bigUint(n)
	if scale.Cmp(total) >= 0 {
		return equivocationFull
	}

	return types.FractionFromBig[uint64](
		new(big.Int).Mul(scale, scale),
		new(big.Int).Mul(total, total),
	)
}

func (e *Equivocation) AsMisconductLevel(severity types.Fraction[uint64]) types.Level {
	switch {
	case severity.Cmp(equivocationLevelOne) < 0:
		return types.LevelOne
	case severity.Cmp(equivocationLevelTwo) < 0:
		return types.LevelTwo
	case severity.Cmp(equivocationLevelThree) < 0:
		return types.LevelThree
	default:
		return types.LevelFour
	}
}
