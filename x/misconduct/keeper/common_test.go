package keeper_test

import (
	"testing"
	"time"

	"github.com/cometbft/cometbft/crypto"
	"github.com/cometbft/cometbft/crypto/secp256k1"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	ledgerkeeper "github.com/initia-labs/misconduct/x/ledger/keeper"
	ledgertypes "github.com/initia-labs/misconduct/x/ledger/types"
	"github.com/initia-labs/misconduct/x/misconduct/keeper"
	"github.com/initia-labs/misconduct/x/misconduct/policy"
	"github.com/initia-labs/misconduct/x/misconduct/testutil"
	"github.com/initia-labs/misconduct/x/misconduct/types"
)

var (
	pubKeys = []crypto.PubKey{
		secp256k1.GenPrivKey().PubKey(),
		secp256k1.GenPrivKey().PubKey(),
		secp256k1.GenPrivKey().PubKey(),
		secp256k1.GenPrivKey().PubKey(),
		secp256k1.GenPrivKey().PubKey(),
	}

	addrs = []sdk.AccAddress{
		sdk.AccAddress(pubKeys[0].Address()),
		sdk.AccAddress(pubKeys[1].Address()),
		sdk.AccAddress(pubKeys[2].Address()),
		sdk.AccAddress(pubKeys[3].Address()),
		sdk.AccAddress(pubKeys[4].Address()),
	}

	valAddrs = []sdk.ValAddress{
		sdk.ValAddress(pubKeys[0].Address()),
		sdk.ValAddress(pubKeys[1].Address()),
		sdk.ValAddress(pubKeys[2].Address()),
		sdk.ValAddress(pubKeys[3].Address()),
		sdk.ValAddress(pubKeys[4].Address()),
	}

	nominators = []sdk.AccAddress{
		sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()),
		sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()),
		sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()),
		sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()),
		sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()),
	}

	authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
)

type TestKeepers struct {
	MisconductKeeper *keeper.Keeper
	LedgerKeeper     *ledgerkeeper.Keeper
}

func createDefaultTestInput(t testing.TB) (sdk.Context, TestKeepers) {
	return createTestInput(t, types.DefaultParams())
}

func createTestInput(t testing.TB, params types.Params) (sdk.Context, TestKeepers) {
	ctx, keys := createTestContext(t, types.StoreKey, ledgertypes.StoreKey)

	ledgerKeeper := ledgerkeeper.NewKeeper(runtime.NewKVStoreService(keys[ledgertypes.StoreKey]))
	misconductKeeper := newMisconductKeeper(t, ctx, keys[types.StoreKey], ledgerKeeper, params)

	return ctx, TestKeepers{
		MisconductKeeper: misconductKeeper,
		LedgerKeeper:     ledgerKeeper,
	}
}

// createMockLedgerInput returns a misconduct keeper slashing through a mock
// ledger.
func createMockLedgerInput(t testing.TB, params types.Params) (sdk.Context, *keeper.Keeper, *testutil.MockStakingLedger) {
	ctx, keys := createTestContext(t, types.StoreKey)

	ledger := testutil.NewMockStakingLedger(gomock.NewController(t))
	return ctx, newMisconductKeeper(t, ctx, keys[types.StoreKey], ledger, params), ledger
}

func createTestContext(t testing.TB, names ...string) (sdk.Context, map[string]*storetypes.KVStoreKey) {
	keys := storetypes.NewKVStoreKeys(names...)

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, v := range keys {
		ms.MountStoreWithDB(v, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())

	return ctx, keys
}

func newMisconductKeeper(
	t testing.TB,
	ctx sdk.Context,
	key *storetypes.KVStoreKey,
	ledger types.StakingLedger,
	params types.Params,
) *keeper.Keeper {
	misconductKeeper := keeper.NewKeeper(runtime.NewKVStoreService(key), ledger, authority)
	for name, constructor := range policy.DefaultPolicies() {
		require.NoError(t, misconductKeeper.RegisterPolicy(name, constructor))
	}
	require.NoError(t, misconductKeeper.SetParams(ctx, params))

	return misconductKeeper
}

// bondValidators gives the first n validators 1000 own stake and a 250
// nomination each, so every one of them has 1250 slashable.
func bondValidators(t testing.TB, ctx sdk.Context, k *ledgerkeeper.Keeper, n int) {
	for i := 0; i < n; i++ {
		require.NoError(t, k.SetFreeBalance(ctx, addrs[i], math.NewInt(1000)))
		require.NoError(t, k.Bond(ctx, valAddrs[i], math.NewInt(1000)))

		require.NoError(t, k.SetFreeBalance(ctx, nominators[i], math.NewInt(250)))
		require.NoError(t, k.Nominate(ctx, nominators[i], valAddrs[i], math.NewInt(250)))
	}
}

func freeBalance(t testing.TB, ctx sdk.Context, k *ledgerkeeper.Keeper, addr sdk.AccAddress) math.Int {
	balance, err := k.FreeBalance(ctx, addr)
	require.NoError(t, err)
	return balance
}
