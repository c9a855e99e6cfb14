package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/ledger module sentinel errors
var (
	ErrNegativeAmount      = errorsmod.Register(ModuleName, 2, "amount must not be negative")
	ErrInsufficientBalance = errorsmod.Register(ModuleName, 3, "insufficient free balance")
	ErrNotBonded           = errorsmod.Register(ModuleName, 4, "validator is not bonded")
	ErrEmptyAddress        = errorsmod.Register(ModuleName, 5, "empty address")
	ErrInvalidGenesis      = errorsmod.Register(ModuleName, 6, "invalid ledger genesis")
)
