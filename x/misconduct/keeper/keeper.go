package keeper

import (
	"context"
	"errors"
	"sort"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/x/misconduct/types"
)

// Keeper of the misconduct store
type Keeper struct {
	storeService corestoretypes.KVStoreService

	ledger types.StakingLedger
	hooks  types.MisconductHooks

	policies map[string]types.PolicyConstructor

	Schema       collections.Schema
	Params       collections.Item[types.Params]
	PolicyStates collections.Map[string, types.PolicyState]
	SlashCounts  collections.Map[[]byte, uint64]

	authority string
}

// NewKeeper creates a new misconduct Keeper instance
func NewKeeper(
	storeService corestoretypes.KVStoreService,
	ledger types.StakingLedger,
	authority string,
) *Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := &Keeper{
		storeService: storeService,
		ledger:       ledger,
		policies:     make(map[string]types.PolicyConstructor),
		Params:       collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValue),
		PolicyStates: collections.NewMap(sb, types.PolicyStatesPrefix, "policy_states", collections.StringKey, types.PolicyStateValue),
		SlashCounts:  collections.NewMap(sb, types.SlashCountsPrefix, "slash_counts", collections.BytesKey, collections.Uint64Value),
		authority:    authority,
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// GetAuthority returns the x/misconduct module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// SetHooks sets the misconduct hooks
func (k *Keeper) SetHooks(mh types.MisconductHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set misconduct hooks twice")
	}

	k.hooks = mh

	return k
}

// Hooks gets the hooks for the misconduct keeper
func (k *Keeper) Hooks() types.MisconductHooks {
	if k.hooks == nil {
		// return a no-op implementation if no hooks are set
		return types.MultiMisconductHooks{}
	}

	return k.hooks
}

// RegisterPolicy makes a policy available under name.
func (k *Keeper) RegisterPolicy(name string, constructor types.PolicyConstructor) error {
	if name == "" || constructor == nil {
		return types.ErrUnknownPolicy.Wrap("empty policy registration")
	}
	if _, ok := k.policies[name]; ok {
		return types.ErrPolicyExists.Wrap(name)
	}

	k.policies[name] = constructor
	return nil
}

// PolicyNames returns the registered policy names in sorted order.
func (k Keeper) PolicyNames() []string {
	names := make([]string, 0, len(k.policies))
	for name := range k.policies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// GetSlashCount returns the number of slash requests issued for valAddr.
func (k Keeper) GetSlashCount(ctx context.Context, valAddr sdk.ValAddress) (uint64, error) {
	count, err := k.SlashCounts.Get(ctx, valAddr)
	if err != nil && errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	return count, nil
}
