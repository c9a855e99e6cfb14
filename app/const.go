package app

import (
	"time"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// AppName is the application name
	AppName = "misconduct"

	// EnvPrefix is environment variable prefix for the app
	EnvPrefix = "MISCONDUCT"
)

// GenesisTime is the block time of the first block.
var GenesisTime = time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC)

// DefaultAuthority returns the gov module account address, the default
// authority over module params.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
