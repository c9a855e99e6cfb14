package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"cosmossdk.io/math"
	"golang.org/x/exp/constraints"
)

// Severity is the set of integer types a Fraction can be built from.
type Severity interface {
	constraints.Unsigned
}

// FractionLength is the length of the binary encoding of a Fraction.
const FractionLength = 16

// Fraction is an exact rational misconduct severity.
//
// The field naming is inherited from the on-chain format and is inverted
// relative to the usual mathematical convention: the effective ratio is
// Denominator()/Numerator(). A severity of 1.5% is Fraction{denominator: 3,
// numerator: 200}, and the slash applied to a balance b is
// floor(b * Denominator() / Numerator()). A zero Numerator() means "no
// slash".
type Fraction[T Severity] struct {
	denominator T
	numerator   T
}

// NewFraction returns the fraction with the given fields, unreduced.
func NewFraction[T Severity](denominator, numerator T) Fraction[T] {
	return Fraction[T]{denominator: denominator, numerator: numerator}
}

// NewReducedFraction returns denominator/numerator divided by their greatest
// common divisor.
func NewReducedFraction[T Severity](denominator, numerator T) Fraction[T] {
	return FractionFromBig[T](
		new(big.Int).SetUint64(uint64(denominator)),
		new(big.Int).SetUint64(uint64(numerator)),
	)
}

// FractionFromBig reduces denominator/numerator and fits both into T. When
// the reduced fields still do not fit, both are shifted right together until
// they do, which keeps the ratio within one unit of the last place. A
// numerator that would shift down to zero is pinned to one.
func FractionFromBig[T Severity](denominator, numerator *big.Int) Fraction[T] {
	d := new(big.Int).Set(denominator)
	n := new(big.Int).Set(numerator)
	if d.Sign() < 0 || n.Sign() < 0 {
		return Fraction[T]{}
	}

	if d.Sign() == 0 {
		if n.Sign() == 0 {
			return Fraction[T]{}
		}
		return Fraction[T]{denominator: 0, numerator: 1}
	}

	if n.Sign() != 0 {
		gcd := new(big.Int).GCD(nil, nil, d, n)
		d.Quo(d, gcd)
		n.Quo(n, gcd)
	}

	limit := new(big.Int).SetUint64(uint64(^T(0)))
	for d.Cmp(limit) > 0 || n.Cmp(limit) > 0 {
		d.Rsh(d, 1)
		n.Rsh(n, 1)
	}
	if n.Sign() == 0 && numerator.Sign() != 0 {
		n.SetUint64(1)
	}

	return Fraction[T]{denominator: T(d.Uint64()), numerator: T(n.Uint64())}
}

// Denominator returns the scale field, the dividend of the effective ratio.
func (f Fraction[T]) Denominator() T {
	return f.denominator
}

// Numerator returns the base field, the divisor of the effective ratio.
func (f Fraction[T]) Numerator() T {
	return f.numerator
}

// IsZero reports whether the fraction results in no slash.
func (f Fraction[T]) IsZero() bool {
	return f.numerator == 0 || f.denominator == 0
}

// Cmp compares the effective ratios of f and other, treating every zero
// fraction as equal to zero.
func (f Fraction[T]) Cmp(other Fraction[T]) int {
	switch {
	case f.IsZero() && other.IsZero():
		return 0
	case f.IsZero():
		return -1
	case other.IsZero():
		return 1
	}

	lhs := math.NewIntFromUint64(uint64(f.denominator)).Mul(math.NewIntFromUint64(uint64(other.numerator)))
	rhs := math.NewIntFromUint64(uint64(other.denominator)).Mul(math.NewIntFromUint64(uint64(f.numerator)))
	switch {
	case lhs.LT(rhs):
		return -1
	case lhs.GT(rhs):
		return 1
	default:
		return 0
	}
}

// Equal reports whether both fields are identical.
func (f Fraction[T]) Equal(other Fraction[T]) bool {
	return f.denominator == other.denominator && f.numerator == other.numerator
}

// LegacyDec returns the effective ratio as a decimal. It is meant for logs
// only; slashing never goes through it.
func (f Fraction[T]) LegacyDec() math.LegacyDec {
	if f.IsZero() {
		return math.LegacyZeroDec()
	}

	return math.LegacyNewDecFromInt(math.NewIntFromUint64(uint64(f.denominator))).
		QuoInt(math.NewIntFromUint64(uint64(f.numerator)))
}

func (f Fraction[T]) String() string {
	return fmt.Sprintf("%d/%d", uint64(f.denominator), uint64(f.numerator))
}

// Marshal encodes the fraction as two big-endian uint64 words, denominator
// first.
func (f Fraction[T]) Marshal() []byte {
	bz := make([]byte, FractionLength)
	binary.BigEndian.PutUint64(bz[:8], uint64(f.denominator))
	binary.BigEndian.PutUint64(bz[8:], uint64(f.numerator))
	return bz
}

// Unmarshal decodes the output of Marshal.
func (f *Fraction[T]) Unmarshal(bz []byte) error {
	if len(bz) != FractionLength {
		return ErrInvalidFraction.Wrapf("expected %d bytes, got %d", FractionLength, len(bz))
	}

	denominator, err := fitSeverity[T](binary.BigEndian.Uint64(bz[:8]))
	if err != nil {
		return err
	}
	numerator, err := fitSeverity[T](binary.BigEndian.Uint64(bz[8:]))
	if err != nil {
		return err
	}

	f.denominator, f.numerator = denominator, numerator
	return nil
}

type fractionJSON struct {
	Denominator string `json:"denominator"`
	Numerator   string `json:"numerator"`
}

func (f Fraction[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(fractionJSON{
		Denominator: strconv.FormatUint(uint64(f.denominator), 10),
		Numerator:   strconv.FormatUint(uint64(f.numerator), 10),
	})
}

func (f *Fraction[T]) UnmarshalJSON(bz []byte) error {
	var raw fractionJSON
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}

	denominator, err := parseSeverity[T](raw.Denominator)
	if err != nil {
		return err
	}
	numerator, err := parseSeverity[T](raw.Numerator)
	if err != nil {
		return err
	}

	f.denominator, f.numerator = denominator, numerator
	return nil
}

// MarshalYAML renders the fraction the same way as its JSON form.
func (f Fraction[T]) MarshalYAML() (interface{}, error) {
	return fractionJSON{
		Denominator: strconv.FormatUint(uint64(f.denominator), 10),
		Numerator:   strconv.FormatUint(uint64(f.numerator), 10),
	}, nil
}

func parseSeverity[T Severity](s string) (T, error) {
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidFraction.Wrap(err.Error())
	}

	return fitSeverity[T](v)
}

func fitSeverity[T Severity](v uint64) (T, error) {
	if uint64(T(v)) != v {
		return 0, ErrInvalidFraction.Wrapf("%d overflows severity type", v)
	}

	return T(v), nil
}
