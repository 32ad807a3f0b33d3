// Package stimulus supplies the per-tick inputs of a register: reset,
// enable, and the two boundary bits.
//
// Inputs may be constant, read from bit channels, or computed by a
// Starlark script that defines any of
//
//	def reset(t):  ...
//	def enable(t): ...
//	def left(t):   ...
//	def right(t):  ...
//
// where t is the tick number (from 0) and each function returns a bool
// or an int (nonzero is true). reset(t) returns the level of the reset
// input, which the register interprets through its ResetLevel. Missing
// functions default to the inactive reset level, enabled, and zero
// boundaries.
package stimulus

import (
	"errors"
	"iter"

	"github.com/ezrec/lcar/io"
	"github.com/ezrec/lcar/lcar"
	"github.com/ezrec/lcar/translate"
)

var f = translate.From

var (
	ErrStimulus = errors.New(f("stimulus"))
)

// Source provides the inputs for each tick.
type Source interface {
	Inputs(tick int) (in lcar.Inputs, err error)
}

// Constant is a Source that supplies the same inputs on every tick.
type Constant lcar.Inputs

var _ Source = Constant{}

// Free is the free-running stimulus of an active high register: enabled,
// no reset, zero boundaries.
var Free = Idle(lcar.ActiveHigh)

// Idle returns the free-running stimulus for a register whose reset input
// is interpreted at level: reset held inactive, enabled, zero boundaries.
func Idle(level lcar.ResetLevel) Constant {
	return Constant{Reset: level.Inactive(), Enable: true}
}

// Inputs returns the constant inputs.
func (c Constant) Inputs(tick int) (in lcar.Inputs, err error) {
	in = lcar.Inputs(c)
	return
}

// Stream is a Source whose boundary bits are read, one per tick, from bit
// channels. Everything else comes from Base (Free if nil). A nil channel
// leaves the Base boundary in place; an exhausted channel supplies zero.
type Stream struct {
	Base  Source
	Left  io.Channel
	Right io.Channel

	left, right *pull
}

var _ Source = (*Stream)(nil)

type pull struct {
	next func() (bool, bool)
	stop func()
}

func newPull(ch io.Channel) *pull {
	if ch == nil {
		return nil
	}
	next, stop := iter.Pull(ch.Receive())
	return &pull{next: next, stop: stop}
}

func (p *pull) bit() bool {
	value, ok := p.next()
	return ok && value
}

func (p *pull) close() {
	if p != nil {
		p.stop()
	}
}

// Inputs draws the next boundary bits from the channels.
func (st *Stream) Inputs(tick int) (in lcar.Inputs, err error) {
	base := st.Base
	if base == nil {
		base = Free
	}

	in, err = base.Inputs(tick)
	if err != nil {
		return
	}

	if st.Left != nil {
		if st.left == nil {
			st.left = newPull(st.Left)
		}
		in.LeftIn = st.left.bit()
	}
	if st.Right != nil {
		if st.right == nil {
			st.right = newPull(st.Right)
		}
		in.RightIn = st.right.bit()
	}

	return
}

func (st *Stream) stop() {
	st.left.close()
	st.right.close()
	st.left = nil
	st.right = nil
}

// Rewind restarts both channels from their beginning, where the channel
// supports it.
func (st *Stream) Rewind() {
	st.stop()
	for _, ch := range []io.Channel{st.Left, st.Right} {
		if ch != nil {
			ch.Rewind()
		}
	}
}

// Close releases the channel iterators, and closes the channels and the
// base source if they can be closed.
func (st *Stream) Close() (err error) {
	st.stop()

	for _, item := range []any{st.Left, st.Right, st.Base} {
		closer, ok := item.(interface{ Close() error })
		if !ok {
			continue
		}
		cerr := closer.Close()
		if err == nil {
			err = cerr
		}
	}

	return
}
