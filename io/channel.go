// Package io provides bit-serial channels for register streams.
// A channel carries one bit per clock tick: Tape packs the bits into bytes
// on an io.Writer (or unpacks them from an io.Reader), and Ring buffers
// them in memory up to a fixed capacity.
package io

import (
	"iter"
)

// Channel defines the interface for all bit channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields bits from the channel.
	Receive() iter.Seq[bool]
	// Send writes a single bit to the channel.
	Send(value bool) error
}
