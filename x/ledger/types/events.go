package types

// ledger module event types
const (
	EventTypeSlash = "ledger_slash"
	EventTypeBond  = "ledger_bond"

	AttributeKeyValidator = "validator"
	AttributeKeyAccount   = "account"
	AttributeKeyAmount    = "amount"
	AttributeKeyRequested = "requested"
)
