package sim

import (
	"errors"

	"github.com/ezrec/lcar/translate"
)

var f = translate.From

var (
	ErrFormat = errors.New(f("output format unknown"))
)

// ErrRuntime indicates the tick at which a run failed.
type ErrRuntime struct {
	Tick int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("tick %d %v", err.Tick, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
