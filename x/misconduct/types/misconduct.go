package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Misconduct estimates the severity of a kind of misbehaviour.
type Misconduct[T Severity] interface {
	// OnMisconduct updates the severity estimate after misbehaved validators
	// were reported for sessionIndex, out of totalValidators.
	OnMisconduct(misbehaved []sdk.ValAddress, totalValidators uint64, sessionIndex uint64)

	// Severity returns the current severity estimate.
	Severity() Fraction[T]

	// AsMisconductLevel maps a severity to a level between 1 and 4. It only
	// depends on its argument, so it can classify historical severities too.
	AsMisconductLevel(severity Fraction[T]) Level
}

// OnEndEra is a Misconduct that is slashed once at the end of an era.
type OnEndEra[T Severity] interface {
	Misconduct[T]

	// GetMisbehaved returns the validators that misbehaved during the era,
	// in the order they were first reported.
	GetMisbehaved() []sdk.ValAddress
}

// Policy is an OnEndEra whose state is persisted by the keeper between
// blocks.
type Policy interface {
	OnEndEra[uint64]

	Name() string
	ExportState() PolicyState
	ImportState(state PolicyState)

	// OnEraEnd forgets the era's misbehaved validators and, when
	// resetSeverity is set, the severity estimate.
	OnEraEnd(resetSeverity bool)
}

// PolicyConstructor builds a fresh policy configured by params.
type PolicyConstructor func(params Params) Policy

// PolicyState is the persisted state of a Policy.
type PolicyState struct {
	Severity    Fraction[uint64] `json:"severity" yaml:"severity"`
	Misbehaved  []sdk.ValAddress `json:"misbehaved" yaml:"misbehaved"`
	LastSession uint64           `json:"last_session,string" yaml:"last_session"`
	Reports     uint64           `json:"reports,string" yaml:"reports"`
}

// Validate checks the state is internally consistent.
func (s PolicyState) Validate() error {
	seen := make(map[string]struct{}, len(s.Misbehaved))
	for _, valAddr := range s.Misbehaved {
		if len(valAddr) == 0 {
			return ErrInvalidGenesis.Wrap("empty misbehaved validator address")
		}

		key := string(valAddr)
		if _, ok := seen[key]; ok {
			return ErrInvalidGenesis.Wrapf("duplicated misbehaved validator %s", valAddr)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// PolicyStateEntry pairs a policy name with its state for genesis.
type PolicyStateEntry struct {
	Policy string      `json:"policy" yaml:"policy"`
	State  PolicyState `json:"state" yaml:"state"`
}
