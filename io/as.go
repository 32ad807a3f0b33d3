package io

import (
	"iter"

	"github.com/ezrec/lcar/bitvec"
)

// SendAsUint8 sends an 8-bit unsigned integer as 8 bits to the channel,
// LSB first.
func SendAsUint8(ch Channel, value uint8) (err error) {
	for n := range 8 {
		err = ch.Send(((value >> n) & 1) == 1)
		if err != nil {
			return
		}
	}
	return
}

// ReceiveAsUint8 returns an iterator that reads bits from the channel and
// yields complete 8-bit unsigned integers, LSB first. A trailing partial
// byte is yielded zero padded.
func ReceiveAsUint8(ch Channel) iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		var n int
		var value uint8
		for bit := range ch.Receive() {
			if bit {
				value |= (1 << n)
			}
			if n == 7 {
				if !yield(value) {
					return
				}
				value = 0
				n = 0
			} else {
				n++
			}
		}
		if n != 0 {
			yield(value)
		}
	}
}

// SendAsVector sends every cell of a vector, leftmost first.
func SendAsVector(ch Channel, value bitvec.Vector) (err error) {
	for n := range value.Len() {
		err = ch.Send(value.Bit(n))
		if err != nil {
			return
		}
	}
	return
}

// ReceiveAsVector returns an iterator that reads bits from the channel and
// yields complete vectors of width cells. A trailing partial vector is
// dropped.
func ReceiveAsVector(ch Channel, width int) iter.Seq[bitvec.Vector] {
	return func(yield func(value bitvec.Vector) bool) {
		if width <= 0 {
			return
		}
		cells := make([]bool, 0, width)
		for bit := range ch.Receive() {
			cells = append(cells, bit)
			if len(cells) == width {
				if !yield(bitvec.FromBools(cells)) {
					return
				}
				cells = cells[:0]
			}
		}
	}
}
