package testutil

import (
	"fmt"

	"cosmossdk.io/math"
	"go.uber.org/mock/gomock"
)

var _ gomock.Matcher = intEq{}

type intEq struct {
	expected math.Int
}

// IntEq matches a math.Int argument by value.
func IntEq(expected math.Int) gomock.Matcher {
	return intEq{expected: expected}
}

func (m intEq) Matches(x any) bool {
	actual, ok := x.(math.Int)
	if !ok || actual.IsNil() {
		return false
	}

	return actual.Equal(m.expected)
}

func (m intEq) String() string {
	return fmt.Sprintf("is equal to %s", m.expected)
}
