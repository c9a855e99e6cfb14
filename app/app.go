package app

import (
	"encoding/json"
	"fmt"
	"time"

	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/initia-labs/misconduct/x/ledger"
	ledgerkeeper "github.com/initia-labs/misconduct/x/ledger/keeper"
	ledgertypes "github.com/initia-labs/misconduct/x/ledger/types"
	"github.com/initia-labs/misconduct/x/misconduct"
	misconductkeeper "github.com/initia-labs/misconduct/x/misconduct/keeper"
	"github.com/initia-labs/misconduct/x/misconduct/policy"
	misconducttypes "github.com/initia-labs/misconduct/x/misconduct/types"
)

// MisconductApp wires the ledger and misconduct keepers over a single
// commit multistore. It has no consensus engine; the caller drives blocks
// with NewContext and Commit.
type MisconductApp struct {
	logger log.Logger

	cms  storetypes.CommitMultiStore
	keys map[string]*storetypes.KVStoreKey

	LedgerKeeper     *ledgerkeeper.Keeper
	MisconductKeeper *misconductkeeper.Keeper

	// modules in genesis initialization order
	modules []module.HasGenesis

	chainID   string
	height    int64
	blockTime time.Time
}

// NewMisconductApp returns a reference to an initialized MisconductApp.
func NewMisconductApp(logger log.Logger, db dbm.DB, authority string) (*MisconductApp, error) {
	keys := storetypes.NewKVStoreKeys(ledgertypes.StoreKey, misconducttypes.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, err
	}

	app := &MisconductApp{
		logger:    logger,
		cms:       cms,
		keys:      keys,
		chainID:   AppName,
		height:    cms.LastCommitID().Version + 1,
		blockTime: GenesisTime,
	}

	app.LedgerKeeper = ledgerkeeper.NewKeeper(runtime.NewKVStoreService(keys[ledgertypes.StoreKey]))
	app.MisconductKeeper = misconductkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[misconducttypes.StoreKey]),
		app.LedgerKeeper,
		authority,
	)
	for _, name := range sortedPolicyNames() {
		if err := app.MisconductKeeper.RegisterPolicy(name, policy.DefaultPolicies()[name]); err != nil {
			return nil, err
		}
	}

	app.modules = []module.HasGenesis{
		ledger.NewAppModule(app.LedgerKeeper),
		misconduct.NewAppModule(app.MisconductKeeper),
	}

	return app, nil
}

// Logger returns the application logger.
func (app *MisconductApp) Logger() log.Logger {
	return app.logger.With("module", "app")
}

// GetKey returns the KVStoreKey for the provided store key.
func (app *MisconductApp) GetKey(storeKey string) *storetypes.KVStoreKey {
	return app.keys[storeKey]
}

// LastBlockHeight returns the last committed height.
func (app *MisconductApp) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// NewContext returns a context for the block being built.
func (app *MisconductApp) NewContext() sdk.Context {
	return sdk.NewContext(app.cms, tmproto.Header{
		ChainID: app.chainID,
		Height:  app.height,
		Time:    app.blockTime,
	}, false, app.logger)
}

// InitChain validates the genesis state and initializes every module from
// it in order. Modules missing from genesisState start from their default
// genesis.
func (app *MisconductApp) InitChain(genesisState GenesisState) (err error) {
	basics := BasicManager()
	defaults := NewDefaultGenesisState()

	data := make(GenesisState, len(basics))
	for name := range basics {
		if bz, ok := genesisState[name]; ok {
			data[name] = bz
		} else {
			data[name] = defaults[name]
		}
	}

	if err := basics.ValidateGenesis(nil, nil, data); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to init genesis: %v", r)
		}
	}()

	ctx := app.NewContext()
	for _, m := range app.modules {
		m.InitGenesis(ctx, nil, data[m.(module.HasName).Name()])
	}

	return nil
}

// ExportGenesis returns the current state of every module.
func (app *MisconductApp) ExportGenesis() GenesisState {
	ctx := app.NewContext()

	genesisState := make(GenesisState, len(app.modules))
	for _, m := range app.modules {
		genesisState[m.(module.HasName).Name()] = m.ExportGenesis(ctx, nil)
	}

	return genesisState
}

// Commit persists the block and moves to the next one, blockTime later.
func (app *MisconductApp) Commit(blockTime time.Duration) storetypes.CommitID {
	commitID := app.cms.Commit()

	app.Logger().Debug("committed", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash))

	app.height = commitID.Version + 1
	app.blockTime = app.blockTime.Add(blockTime)
	return commitID
}

// ExportGenesisJSON returns ExportGenesis indented for display.
func (app *MisconductApp) ExportGenesisJSON() ([]byte, error) {
	return json.MarshalIndent(app.ExportGenesis(), "", "  ")
}
