package keeper_test

import (
	"testing"
	"time"

	"github.com/cometbft/cometbft/crypto"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/ledger/keeper"
	"github.com/initia-labs/misconduct/x/ledger/types"
)

// addrs[i] is the account of the validator operating as valAddrs[i].
var addrs, valAddrs = testAddresses(5)

func testAddresses(n int) ([]sdk.AccAddress, []sdk.ValAddress) {
	accs := make([]sdk.AccAddress, n)
	vals := make([]sdk.ValAddress, n)
	for i := range accs {
		raw := crypto.AddressHash([]byte{byte(i)})
		accs[i], vals[i] = sdk.AccAddress(raw), sdk.ValAddress(raw)
	}

	return accs, vals
}

func createDefaultTestInput(t testing.TB) (sdk.Context, *keeper.Keeper) {
	key := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	ms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())

	return ctx, keeper.NewKeeper(runtime.NewKVStoreService(key))
}
