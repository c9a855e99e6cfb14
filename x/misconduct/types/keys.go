package types

const (
	// ModuleName is the name of the misconduct module
	ModuleName = "misconduct"

	// StoreKey is the string store representation
	StoreKey = ModuleName
)

var (
	ParamsKey = []byte{0x11} // key for parameters for module x/misconduct

	PolicyStatesPrefix = []byte{0x21} // prefix for each key to a policy state, by policy name
	SlashCountsPrefix  = []byte{0x31} // prefix for each key to a slash request counter, by validator
)
