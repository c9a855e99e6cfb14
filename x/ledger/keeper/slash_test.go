package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/ledger/keeper"
	"github.com/initia-labs/misconduct/x/ledger/types"
)

// setupValidator bonds valAddrs[0] with 1000 own stake and a 250 nomination
// from addrs[1].
func setupValidator(t *testing.T, ctx sdk.Context, k *keeper.Keeper) {
	require.NoError(t, k.SetFreeBalance(ctx, addrs[0], math.NewInt(1000)))
	require.NoError(t, k.SetFreeBalance(ctx, addrs[1], math.NewInt(500)))
	require.NoError(t, k.Bond(ctx, valAddrs[0], math.NewInt(1000)))
	require.NoError(t, k.Nominate(ctx, addrs[1], valAddrs[0], math.NewInt(250)))
}

func Test_SlashValidatorOwnStake(t *testing.T) {
	ctx, k := createDefaultTestInput(t)
	setupValidator(t, ctx, k)

	slashable, err := k.SlashableBalance(ctx, valAddrs[0])
	require.NoError(t, err)
	require.Equal(t, "1250", slashable.String())

	require.NoError(t, k.SlashValidator(ctx, valAddrs[0], math.NewInt(18)))

	free, err := k.FreeBalance(ctx, addrs[0])
	require.NoError(t, err)
	require.Equal(t, "982", free.String())

	free, err = k.FreeBalance(ctx, addrs[1])
	require.NoError(t, err)
	require.Equal(t, "500", free.String())

	slashable, err = k.SlashableBalance(ctx, valAddrs[0])
	require.NoError(t, err)
	require.Equal(t, "1232", slashable.String())

	total, err := k.GetTotalSlashed(ctx)
	require.NoError(t, err)
	require.Equal(t, "18", total.String())

	events := ctx.EventManager().Events()
	require.Equal(t, types.EventTypeSlash, events[len(events)-1].Type)
}

func Test_SlashValidatorNominators(t *testing.T) {
	ctx, k := createDefaultTestInput(t)
	setupValidator(t, ctx, k)
	require.NoError(t, k.SetFreeBalance(ctx, addrs[2], math.NewInt(250)))
	require.NoError(t, k.Nominate(ctx, addrs[2], valAddrs[0], math.NewInt(250)))

	// total 1500, own 1000; rest 200 split as 200*250/1500 = 33 each
	require.NoError(t, k.SlashValidator(ctx, valAddrs[0], math.NewInt(1200)))

	free, err := k.FreeBalance(ctx, addrs[0])
	require.NoError(t, err)
	require.True(t, free.IsZero())

	free, err = k.FreeBalance(ctx, addrs[1])
	require.NoError(t, err)
	require.Equal(t, "467", free.String())

	free, err = k.FreeBalance(ctx, addrs[2])
	require.NoError(t, err)
	require.Equal(t, "217", free.String())

	exposure, err := k.Exposure(ctx, valAddrs[0])
	require.NoError(t, err)
	require.True(t, exposure.Own.IsZero())
	require.Equal(t, "434", exposure.Total.String())

	total, err := k.GetTotalSlashed(ctx)
	require.NoError(t, err)
	require.Equal(t, "1066", total.String())
}

func Test_SlashValidatorCappedByExposure(t *testing.T) {
	ctx, k := createDefaultTestInput(t)
	setupValidator(t, ctx, k)

	require.NoError(t, k.SlashValidator(ctx, valAddrs[0], math.NewInt(1_000_000)))

	free, err := k.FreeBalance(ctx, addrs[0])
	require.NoError(t, err)
	require.True(t, free.IsZero())

	// rest 250 of total 1250 takes 250*250/1250 = 50 from the nominator
	free, err = k.FreeBalance(ctx, addrs[1])
	require.NoError(t, err)
	require.Equal(t, "450", free.String())
}

func Test_SlashValidatorNoop(t *testing.T) {
	ctx, k := createDefaultTestInput(t)
	setupValidator(t, ctx, k)

	require.NoError(t, k.SlashValidator(ctx, valAddrs[3], math.NewInt(100)))
	require.NoError(t, k.SlashValidator(ctx, valAddrs[0], math.ZeroInt()))
	require.ErrorIs(t, k.SlashValidator(ctx, valAddrs[0], math.NewInt(-1)), types.ErrNegativeAmount)

	free, err := k.FreeBalance(ctx, addrs[0])
	require.NoError(t, err)
	require.Equal(t, "1000", free.String())
}

func Test_LedgerGenesis(t *testing.T) {
	ctx, k := createDefaultTestInput(t)
	setupValidator(t, ctx, k)
	require.NoError(t, k.SlashValidator(ctx, valAddrs[0], math.NewInt(18)))

	genState, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, types.ValidateGenesis(*genState))
	require.Len(t, genState.Balances, 2)
	require.Len(t, genState.Exposures, 1)
	require.Equal(t, "18", genState.TotalSlashed.String())

	ctx2, k2 := createDefaultTestInput(t)
	require.NoError(t, k2.InitGenesis(ctx2, genState))

	exported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, genState.Balances[0].Amount.String(), exported.Balances[0].Amount.String())
	require.Equal(t, genState.Exposures[0].Exposure.Total.String(), exported.Exposures[0].Exposure.Total.String())
	require.Equal(t, "18", exported.TotalSlashed.String())
}
