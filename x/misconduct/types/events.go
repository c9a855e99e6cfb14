package types

// misconduct module event types
const (
	EventTypeSlash = "misconduct_slash"
	EventTypeLevel = "misconduct_level"
	EventTypeEra   = "misconduct_era_end"

	AttributeKeyValidator  = "validator"
	AttributeKeyAmount     = "amount"
	AttributeKeyPolicy     = "policy"
	AttributeKeySeverity   = "severity"
	AttributeKeyLevel      = "level"
	AttributeKeySession    = "session"
	AttributeKeyMisbehaved = "misbehaved"
	AttributeKeyMode       = "mode"
)
