package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}

	assert.NoError(SendAsUint8(tape, 0x3c))
	assert.Equal([]byte{0x3c}, out.Bytes())

	// Three bits stay buffered until flushed.
	assert.NoError(tape.Send(true))
	assert.NoError(tape.Send(false))
	assert.NoError(tape.Send(true))
	assert.Equal(1, out.Len())

	assert.NoError(tape.Flush())
	assert.Equal([]byte{0x3c, 0x05}, out.Bytes())

	// Nothing pending, nothing written.
	assert.NoError(tape.Flush())
	assert.Equal(2, out.Len())
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}
	assert.NoError(tape.Send(true))
	tape.Rewind()
	assert.NoError(tape.Flush())
	assert.Equal(0, out.Len())
}

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{0x01, 0x80})}

	var bits []bool
	for bit := range tape.Receive() {
		bits = append(bits, bit)
	}
	assert.Len(bits, 16)
	assert.True(bits[0])
	assert.True(bits[15])
	for n := 1; n < 15; n++ {
		assert.False(bits[n])
	}
}

func TestTape_Receive_Resume(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{0xf0})}

	var first []bool
	for bit := range tape.Receive() {
		first = append(first, bit)
		if len(first) == 4 {
			break
		}
	}
	assert.Equal([]bool{false, false, false, false}, first)

	var rest []bool
	for bit := range tape.Receive() {
		rest = append(rest, bit)
	}
	assert.Equal([]bool{true, true, true, true}, rest)
}

func TestTape_Closed(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.ErrorIs(tape.Send(true), ErrChannelClosed)

	count := 0
	for range tape.Receive() {
		count++
	}
	assert.Equal(0, count)
}

type closeCounter struct {
	bytes.Buffer
	closed int
}

func (cc *closeCounter) Close() error {
	cc.closed++
	return nil
}

func TestTape_Close(t *testing.T) {
	assert := assert.New(t)

	in := &closeCounter{}
	in.WriteByte(0x01)
	out := &bytes.Buffer{}
	tape := &Tape{Input: in, Output: out}

	assert.NoError(tape.Close())
	assert.Equal(1, in.closed)
	assert.Nil(tape.Input)
	assert.ErrorIs(tape.Send(true), ErrChannelClosed)

	// Closing twice is harmless.
	assert.NoError(tape.Close())
	assert.Equal(1, in.closed)
}
