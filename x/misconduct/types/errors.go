package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/misconduct module sentinel errors
var (
	ErrUnknownPolicy   = errorsmod.Register(ModuleName, 2, "misconduct policy is not registered")
	ErrPolicyExists    = errorsmod.Register(ModuleName, 3, "misconduct policy already registered")
	ErrInvalidFraction = errorsmod.Register(ModuleName, 4, "invalid severity fraction")
	ErrInvalidParams   = errorsmod.Register(ModuleName, 5, "invalid misconduct params")
	ErrInvalidLevel    = errorsmod.Register(ModuleName, 6, "misconduct level out of range")
	ErrInvalidGenesis  = errorsmod.Register(ModuleName, 7, "invalid misconduct genesis")
	ErrInvalidSigner   = errorsmod.Register(ModuleName, 8, "expected authority account as only signer")
)
