package lcar

import (
	"errors"

	"github.com/ezrec/lcar/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrInvalidLength = errors.New(f("invalid length"))
	ErrOutOfRange    = errors.New(f("width out of range"))
	ErrResetLevel    = errors.New(f("reset level unknown"))
)

// ErrWidth reports a state and rule map whose widths disagree, or which
// are empty.
type ErrWidth struct {
	State   int
	RuleMap int
}

func (err ErrWidth) Error() string {
	return f("state width %d, rule map width %d: %v", err.State, err.RuleMap, ErrInvalidLength)
}

func (err ErrWidth) Unwrap() error {
	return ErrInvalidLength
}

// ErrWidthRange reports a catalog lookup outside [MinWidth, MaxWidth].
type ErrWidthRange int

func (err ErrWidthRange) Error() string {
	return f("width %d not in [%d,%d]: %v", int(err), MinWidth, MaxWidth, ErrOutOfRange)
}

func (err ErrWidthRange) Is(target error) bool {
	return target == ErrOutOfRange
}
