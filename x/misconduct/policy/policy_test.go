package policy_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/misconduct/policy"
	"github.com/initia-labs/misconduct/x/misconduct/types"
)

func valAddrs(ids ...byte) []sdk.ValAddress {
	addrs := make([]sdk.ValAddress, len(ids))
	for i, id := range ids {
		addrs[i] = sdk.ValAddress(bytes.Repeat([]byte{id}, 20))
	}
	return addrs
}

func Test_UnresponsiveSeverity(t *testing.T) {
	p := policy.NewUnresponsive(types.DefaultParams())
	require.Equal(t, policy.UnresponsiveName, p.Name())
	require.True(t, p.Severity().IsZero())

	p.OnMisconduct(valAddrs(11, 21, 31, 41), 30, 1)

	severity := p.Severity()
	require.Equal(t, uint64(3), severity.Denominator())
	require.Equal(t, uint64(200), severity.Numerator())
	require.Equal(t, types.LevelThree, p.AsMisconductLevel(severity))
}

func Test_UnresponsiveEdgeCases(t *testing.T) {
	testCases := []struct {
		name     string
		k        int
		n        uint64
		expected types.Fraction[uint64]
		level    types.Level
	}{
		{"no validators", 0, 0, types.NewFraction[uint64](0, 1), types.LevelOne},
		{"nobody misbehaved", 0, 10, types.NewFraction[uint64](0, 1), types.LevelOne},
		{"single offline is free", 1, 10, types.NewFraction[uint64](0, 1), types.LevelOne},
		{"two of a hundred", 2, 100, types.NewFraction[uint64](3, 2000), types.LevelTwo},
		{"a third offline", 11, 30, types.NewFraction[uint64](1, 20), types.LevelFour},
		{"everybody offline", 30, 30, types.NewFraction[uint64](1, 20), types.LevelFour},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids := make([]byte, tc.k)
			for i := range ids {
				ids[i] = byte(i + 1)
			}

			p := policy.NewUnresponsive(types.DefaultParams())
			p.OnMisconduct(valAddrs(ids...), tc.n, 1)
			require.Equal(t, 0, p.Severity().Cmp(tc.expected), p.Severity().String())
			require.Equal(t, tc.level, p.AsMisconductLevel(p.Severity()))
		})
	}
}

func Test_EquivocationSeverity(t *testing.T) {
	p := policy.NewEquivocation(types.DefaultParams())
	require.Equal(t, policy.EquivocationName, p.Name())

	// (3*1/30)^2 = 1/100
	p.OnMisconduct(valAddrs(1), 30, 1)
	require.True(t, p.Severity().Equal(types.NewFraction[uint64](1, 100)))
	require.Equal(t, types.LevelTwo, p.AsMisconductLevel(p.Severity()))

	p.OnMisconduct(valAddrs(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), 30, 2)
	require.True(t, p.Severity().Equal(types.NewFraction[uint64](1, 1)))
	require.Equal(t, types.LevelFour, p.AsMisconductLevel(p.Severity()))
}

func Test_LevelAlwaysInRange(t *testing.T) {
	fractions := []types.Fraction[uint64]{
		types.NewFraction[uint64](0, 0),
		types.NewFraction[uint64](1, 0),
		types.NewFraction[uint64](0, 1),
		types.NewFraction[uint64](^uint64(0), 1),
		types.NewFraction[uint64](1, ^uint64(0)),
		types.NewFraction[uint64](^uint64(0), ^uint64(0)),
		types.NewFraction[uint64](3, 200),
	}

	for name, constructor := range policy.DefaultPolicies() {
		p := constructor(types.DefaultParams())
		for _, f := range fractions {
			level := p.AsMisconductLevel(f)
			require.NoError(t, level.Validate(), "%s %s", name, f)
		}
	}
}

func Test_AccumulationMax(t *testing.T) {
	params := types.DefaultParams()
	params.Accumulation = types.AccumulationMax

	p := policy.NewUnresponsive(params)
	p.OnMisconduct(valAddrs(1, 2, 3, 4), 30, 1)
	first := p.Severity()

	p.OnMisconduct(valAddrs(5, 6), 30, 2)
	require.Equal(t, 0, p.Severity().Cmp(first))

	p.OnMisconduct(valAddrs(5, 6, 7, 8, 9, 10), 30, 3)
	require.Equal(t, 1, p.Severity().Cmp(first))
}

func Test_AccumulationReplace(t *testing.T) {
	params := types.DefaultParams()
	params.Accumulation = types.AccumulationReplace

	p := policy.NewUnresponsive(params)
	p.OnMisconduct(valAddrs(1, 2, 3, 4), 30, 1)
	require.True(t, p.Severity().Equal(types.NewFraction[uint64](3, 200)))

	// a smaller batch within the same session keeps the larger estimate
	p.OnMisconduct(valAddrs(5, 6), 30, 1)
	require.True(t, p.Severity().Equal(types.NewFraction[uint64](3, 200)))

	// a new session replaces it
	p.OnMisconduct(valAddrs(5, 6), 30, 2)
	require.True(t, p.Severity().Equal(types.NewFraction[uint64](1, 200)))
}

func Test_MisbehavedFirstSeenOrder(t *testing.T) {
	p := policy.NewEquivocation(types.DefaultParams())
	p.OnMisconduct(valAddrs(3, 1), 30, 1)
	p.OnMisconduct(valAddrs(2, 1, 3, 4), 30, 2)

	require.Equal(t, valAddrs(3, 1, 2, 4), p.GetMisbehaved())
}

func Test_OnEraEnd(t *testing.T) {
	p := policy.NewUnresponsive(types.DefaultParams())
	p.OnMisconduct(valAddrs(1, 2, 3, 4), 30, 1)

	p.OnEraEnd(false)
	require.Empty(t, p.GetMisbehaved())
	require.True(t, p.Severity().Equal(types.NewFraction[uint64](3, 200)))

	p.OnMisconduct(valAddrs(1, 2, 3, 4), 30, 2)
	p.OnEraEnd(true)
	require.Empty(t, p.GetMisbehaved())
	require.True(t, p.Severity().IsZero())
}

func Test_ExportImportState(t *testing.T) {
	p := policy.NewUnresponsive(types.DefaultParams())
	p.OnMisconduct(valAddrs(1, 2, 3, 4), 30, 7)

	state := p.ExportState()
	require.Equal(t, uint64(7), state.LastSession)
	require.Equal(t, uint64(1), state.Reports)

	restored := policy.NewUnresponsive(types.DefaultParams())
	restored.ImportState(state)
	require.Equal(t, p.GetMisbehaved(), restored.GetMisbehaved())
	require.True(t, p.Severity().Equal(restored.Severity()))

	// imported validators are not duplicated
	restored.OnMisconduct(valAddrs(4, 5), 30, 8)
	require.Equal(t, valAddrs(1, 2, 3, 4, 5), restored.GetMisbehaved())
}
