package lcar

import (
	"strings"
)

// ResetLevel selects which level of the reset input asserts reset.
type ResetLevel int

//go:generate go tool stringer -type=ResetLevel -trimprefix=Active
const (
	ActiveHigh = ResetLevel(0) // Reset while the input is true.
	ActiveLow  = ResetLevel(1) // Reset while the input is false.
)

// Asserted reports whether the reset input level requests a reset.
func (level ResetLevel) Asserted(reset bool) bool {
	if level == ActiveLow {
		return !reset
	}
	return reset
}

// Inactive returns the reset input level that lets the register run.
func (level ResetLevel) Inactive() bool {
	return level == ActiveLow
}

// ParseResetLevel accepts "high" or "low" (any case). The empty string is
// ActiveHigh.
func ParseResetLevel(text string) (level ResetLevel, err error) {
	switch strings.ToLower(text) {
	case "", "high":
		level = ActiveHigh
	case "low":
		level = ActiveLow
	default:
		err = ErrResetLevel
	}
	return
}
