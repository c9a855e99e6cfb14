package types

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SlashMode selects when slashes are applied.
type SlashMode string

const (
	// SlashModeRolling slashes on every reported session.
	SlashModeRolling SlashMode = "rolling"
	// SlashModeEndOfEra accumulates reports and slashes once per era.
	SlashModeEndOfEra SlashMode = "end_of_era"
)

// Accumulation selects how a new session estimate combines with the
// previous severity.
type Accumulation string

const (
	// AccumulationReplace keeps the latest session estimate only.
	AccumulationReplace Accumulation = "replace"
	// AccumulationMax keeps the largest estimate seen so far.
	AccumulationMax Accumulation = "max"
)

// ConversionKind names a CurrencyToVote implementation.
type ConversionKind string

const (
	ConversionU64  ConversionKind = "u64"
	ConversionU128 ConversionKind = "u128"
)

// Default parameter values
const (
	DefaultSlashMode      = SlashModeRolling
	DefaultAccumulation   = AccumulationMax
	DefaultResetOnEraEnd  = true
	DefaultCurrencyToVote = ConversionU64
)

// Params defines the parameters of the misconduct module.
type Params struct {
	SlashMode      SlashMode      `json:"slash_mode" yaml:"slash_mode" mapstructure:"slash_mode"`
	Accumulation   Accumulation   `json:"accumulation" yaml:"accumulation" mapstructure:"accumulation"`
	ResetOnEraEnd  bool           `json:"reset_on_era_end" yaml:"reset_on_era_end" mapstructure:"reset_on_era_end"`
	CurrencyToVote ConversionKind `json:"currency_to_vote" yaml:"currency_to_vote" mapstructure:"currency_to_vote"`
}

func NewParams(
	slashMode SlashMode, accumulation Accumulation,
	resetOnEraEnd bool, currencyToVote ConversionKind,
) Params {
	return Params{
		SlashMode:      slashMode,
		Accumulation:   accumulation,
		ResetOnEraEnd:  resetOnEraEnd,
		CurrencyToVote: currencyToVote,
	}
}

// DefaultParams returns default misconduct parameters
func DefaultParams() Params {
	return NewParams(DefaultSlashMode, DefaultAccumulation, DefaultResetOnEraEnd, DefaultCurrencyToVote)
}

// String returns a human readable string representation of the parameters.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// Conversion returns the CurrencyToVote selected by the params.
func (p Params) Conversion() CurrencyToVote {
	if p.CurrencyToVote == ConversionU128 {
		return U128CurrencyToVote{}
	}

	return U64CurrencyToVote{}
}

// Validate performs basic validation on misconduct parameters
func (p Params) Validate() error {
	if err := validateSlashMode(p.SlashMode); err != nil {
		return errors.Wrap(err, "invalid slash mode")
	}

	if err := validateAccumulation(p.Accumulation); err != nil {
		return errors.Wrap(err, "invalid accumulation")
	}

	if err := validateCurrencyToVote(p.CurrencyToVote); err != nil {
		return errors.Wrap(err, "invalid currency to vote")
	}

	return nil
}

func validateSlashMode(i interface{}) error {
	v, ok := i.(SlashMode)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	switch v {
	case SlashModeRolling, SlashModeEndOfEra:
		return nil
	default:
		return ErrInvalidParams.Wrapf("unknown slash mode %q", v)
	}
}

func validateAccumulation(i interface{}) error {
	v, ok := i.(Accumulation)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	switch v {
	case AccumulationReplace, AccumulationMax:
		return nil
	default:
		return ErrInvalidParams.Wrapf("unknown accumulation %q", v)
	}
}

func validateCurrencyToVote(i interface{}) error {
	v, ok := i.(ConversionKind)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	switch v {
	case ConversionU64, ConversionU128:
		return nil
	default:
		return ErrInvalidParams.Wrapf("unknown conversion %q", v)
	}
}
