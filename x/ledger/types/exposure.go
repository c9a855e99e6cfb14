package types

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/misconduct/internal/jsoncoll"
)

var ExposureValue = jsoncoll.NewValueCodec[Exposure]("ledger/Exposure")

// IndividualExposure is the stake a single nominator backs a validator with.
type IndividualExposure struct {
	Who   sdk.AccAddress `json:"who" yaml:"who"`
	Value math.Int       `json:"value" yaml:"value"`
}

// Exposure is the stake backing a validator: its own bond plus the
// nominations, kept in the order they were made.
type Exposure struct {
	Total  math.Int             `json:"total" yaml:"total"`
	Own    math.Int             `json:"own" yaml:"own"`
	Others []IndividualExposure `json:"others" yaml:"others"`
}

// NewExposure returns an exposure with only the validator's own bond.
func NewExposure(own math.Int) Exposure {
	return Exposure{
		Total:  own,
		Own:    own,
		Others: []IndividualExposure{},
	}
}

// Recalculate resets Total to Own plus every nomination.
func (e *Exposure) Recalculate() {
	total := e.Own
	for _, other := range e.Others {
		total = total.Add(other.Value)
	}
	e.Total = total
}

// Validate checks the exposure amounts are well formed.
func (e Exposure) Validate() error {
	if e.Own.IsNil() || e.Own.IsNegative() {
		return ErrNegativeAmount.Wrap("own")
	}

	total := e.Own
	for _, other := range e.Others {
		if other.Who.Empty() {
			return ErrEmptyAddress.Wrap("nominator")
		}
		if other.Value.IsNil() || other.Value.IsNegative() {
			return ErrNegativeAmount.Wrapf("nomination of %s", other.Who)
		}
		total = total.Add(other.Value)
	}

	if e.Total.IsNil() || !e.Total.Equal(total) {
		return ErrInvalidGenesis.Wrapf("exposure total %s does not match %s", e.Total, total)
	}

	return nil
}
