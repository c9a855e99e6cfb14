package policy

import (
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// estimator returns the severity of a single session in which k out of n
// validators misbehaved.
type estimator func(k, n uint64) types.Fraction[uint64]

// base holds the state shared by every policy. The concrete policies only
// differ in how a session is estimated and how a severity maps to a level.
type base struct {
	name         string
	accumulation types.Accumulation
	estimate     estimator

	severity    types.Fraction[uint64]
	misbehaved  []sdk.ValAddress
	seen        map[string]struct{}
	lastSession uint64
	reports     uint64
}

func newBase(name string, params types.Params, estimate estimator) base {
	return base{
		name:         name,
		accumulation: params.Accumulation,
		estimate:     estimate,
		severity:     zeroSeverity(),
		seen:         make(map[string]struct{}),
	}
}

func (b *base) Name() string {
	return b.name
}

// OnMisconduct folds the session estimate into the severity and records the
// misbehaved validators in first-seen order.
//
// With AccumulationReplace, reports sharing the previous session index still
// keep the larger estimate so one session reported in several batches is
// not undercounted.
func (b *base) OnMisconduct(misbehaved []sdk.ValAddress, totalValidators uint64, sessionIndex uint64) {
	estimate := b.estimate(uint64(len(misbehaved)), totalValidators)

	switch {
	case b.reports == 0:
		b.severity = estimate
	case b.accumulation == types.AccumulationMax,
		sessionIndex == b.lastSession:
		if estimate.Cmp(b.severity) > 0 {
			b.severity = estimate
		}
	default:
		b.severity = estimate
	}

	for _, valAddr := range misbehaved {
		key := string(valAddr)
		if _, ok := b.seen[key]; ok {
			continue
		}

		b.seen[key] = struct{}{}
		b.misbehaved = append(b.misbehaved, valAddr)
	}

	b.lastSession = sessionIndex
	b.reports++
}

func (b *base) Severity() types.Fraction[uint64] {
	return b.severity
}

func (b *base) GetMisbehaved() []sdk.ValAddress {
	out := make([]sdk.ValAddress, len(b.misbehaved))
	copy(out, b.misbehaved)
	return out
}

func (b *base) OnEraEnd(resetSeverity bool) {
	b.misbehaved = nil
	b.seen = make(map[string]struct{})

	if resetSeverity {
		b.severity = zeroSeverity()
		b.reports = 0
	}
}

func (b *base) ExportState() types.PolicyState {
	return types.PolicyState{
		Severity:    b.severity,
		Misbehaved:  b.GetMisbehaved(),
		LastSession: b.lastSession,
		Reports:     b.reports,
	}
}

func (b *base) ImportState(state types.PolicyState) {
	b.severity = state.Severity
	b.lastSession = state.LastSession
	b.reports = state.Reports

	b.misbehaved = nil
	b.seen = make(map[string]struct{}, len(state.Misbehaved))
	for _, valAddr := range state.Misbehaved {
		key := string(valAddr)
		if _, ok := b.seen[key]; ok {
			continue
		}

		b.seen[key] = struct{}{}
		b.misbehaved = append(b.misbehaved, valAddr)
	}
}

// zeroSeverity is the "no slash" severity.
func zeroSeverity() types.Fraction[uint64] {
	return types.NewFraction[uint64](0, 1)
}

func bigUint(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}
