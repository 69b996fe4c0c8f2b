// Package types contains shared types used across the suitegen check framework
package types

import "fmt"

// Level represents the severity of a check
type Level string

// Level enum values
const (
	LevelHigh   Level = "HIGH"
	LevelMedium Level = "MEDIUM"
	LevelLow    Level = "LOW"
)

// String implements the Stringer interface for Level
func (l Level) String() string {
	return string(l)
}

// Valid reports whether l is one of the declared levels
func (l Level) Valid() bool {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return true
	}
	return false
}

// ParseLevel converts a string from a suite descriptor into a Level
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("check level must be one of %s, %s, %s; got %q",
			LevelHigh, LevelMedium, LevelLow, s)
	}
	return l, nil
}
