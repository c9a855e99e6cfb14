package types

const (
	// ModuleName is the name of the ledger module
	ModuleName = "ledger"

	// StoreKey is the string store representation
	StoreKey = ModuleName
)

var (
	FreeBalancesPrefix = []byte{0x11} // prefix for each key to an account free balance
	ExposuresPrefix    = []byte{0x21} // prefix for each key to a validator exposure

	TotalSlashedKey = []byte{0x31} // key for the amount burned by slashes so far
)
