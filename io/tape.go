package io

import (
	"io"
	"iter"
)

// Tape provides sequential I/O for byte streams. It wraps an io.Reader for
// input and an io.Writer for output, converting between bit-level Channel
// operations and byte-level I/O, least significant bit first.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	readIndex int
	hasInput  bool
	lastInput byte

	nextOutput byte
	writeIndex int
}

var _ Channel = (*Tape)(nil)

// Rewind drops any partially assembled output byte; a tape cannot seek.
func (tc *Tape) Rewind() {
	tc.nextOutput = 0
	tc.writeIndex = 0
}

// Receive returns an iterator that yields bits from the input stream,
// reading bytes as needed and yielding them LSB first. The iterator ends
// at the end of the input, or at the first read error.
func (tc *Tape) Receive() iter.Seq[bool] {
	return func(yield func(value bool) bool) {
		if tc.Input == nil {
			return
		}
		for {
			if tc.readIndex == 0 && !tc.hasInput {
				var one [1]byte
				_, err := io.ReadFull(tc.Input, one[:])
				if err != nil {
					return
				}
				tc.lastInput = one[0]
				tc.hasInput = true
			}
			bit := ((tc.lastInput >> tc.readIndex) & 1) != 0
			tc.readIndex++
			if tc.readIndex == 8 {
				tc.readIndex = 0
				tc.hasInput = false
			}
			if !yield(bit) {
				return
			}
		}
	}
}

// Send writes a bit to the output stream, buffering bits until a complete
// byte is assembled, then writing it.
func (tc *Tape) Send(value bool) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	if value {
		tc.nextOutput |= 1 << tc.writeIndex
	}

	tc.writeIndex++

	if tc.writeIndex == 8 {
		_, err = tc.Output.Write([]byte{tc.nextOutput})
		tc.nextOutput = 0
		tc.writeIndex = 0
	}

	return
}

// Flush writes a partially assembled byte, zero padded.
func (tc *Tape) Flush() (err error) {
	if tc.writeIndex == 0 {
		return
	}

	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = tc.Output.Write([]byte{tc.nextOutput})
	tc.nextOutput = 0
	tc.writeIndex = 0

	return
}

// Close closes the input and output streams that can be closed.
func (tc *Tape) Close() (err error) {
	for _, stream := range []any{tc.Input, tc.Output} {
		closer, ok := stream.(io.Closer)
		if !ok {
			continue
		}
		cerr := closer.Close()
		if err == nil {
			err = cerr
		}
	}

	tc.Input = nil
	tc.Output = nil

	return
}
