package types

import "fmt"

// Level is the escalation tier of a severity, always between LevelOne and
// LevelFour.
type Level uint8

const (
	LevelOne Level = iota + 1
	LevelTwo
	LevelThree
	LevelFour
)

// Validate returns an error when l is outside 1..4.
func (l Level) Validate() error {
	if l < LevelOne || l > LevelFour {
		return ErrInvalidLevel.Wrapf("%d", uint8(l))
	}

	return nil
}

func (l Level) String() string {
	return fmt.Sprintf("%d", uint8(l))
}
