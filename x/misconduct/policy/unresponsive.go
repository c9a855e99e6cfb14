package policy

import (
	"math/big"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// UnresponsiveName is the registry name of the Unresponsive policy.
const UnresponsiveName = "unresponsive"

var (
	_ types.Policy = &Unresponsive{}

	unresponsiveCap = types.NewFraction[uint64](1, 20)

	unresponsiveLevelOne = types.NewFraction[uint64](1, 1000)
	unresponsiveLevelTwo = types.NewFraction[uint64](1, 100)
)

// Unresponsive penalizes validators that went offline during a session.
// With k of n validators offline the session severity is
// min(3(k-1)/n, 1) / 20, so a single offline validator is free and a third
// of the set being offline reaches the 5% cap.
type Unresponsive struct {
	base
}

// NewUnresponsive returns a fresh Unresponsive policy.
func NewUnresponsive(params types.Params) types.Policy {
	return &Unresponsive{
		base: newBase(UnresponsiveName, params, unresponsiveEstimate),
	}
}

func unresponsiveEstimate(k, n uint64) types.Fraction[uint64] {
	if k == 0 || n == 0 {
		return zeroSeverity()
	}

	// 3(k-1) / 20n
	scale := new(big.Int).Mul(big.NewInt(3), bigUint(k-1))
	if scale.Cmp(bigUint(n)) >= 0 {
		return unresponsiveCap
	}

	return types.FractionFromBig[uint64](scale, new(big.Int).Mul(big.NewInt(20), bigUint(n)))
}

// AsMisconductLevel maps severity to a level: up to 0.1% is level 1, up to
// 1% level 2, below the cap level 3 and the cap itself level 4.
func (u *Unresponsive) AsMisconductLevel(severity types.Fraction[uint64]) types.Level {
	switch {
	case severity.Cmp(unresponsiveLevelOne) <= 0:
		return types.LevelOne
	case severity.Cmp(unresponsiveLevelTwo) <= 0:
		return types.LevelTwo
	case severity.Cmp(unresponsiveCap) < 0:
		return types.LevelThree
	default:
		return types.LevelFour
	}
}
