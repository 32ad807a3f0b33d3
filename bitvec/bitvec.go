// Package bitvec implements immutable, fixed-length bit vectors.
//
// Positions are numbered from 0 (the leftmost cell, printed first) to
// Len()-1 (the rightmost cell). Every operation returns a new Vector; the
// receiver is never modified, so a Vector may be shared freely between
// goroutines.
package bitvec

import (
	"errors"
	"math/bits"
	"strings"

	"github.com/ezrec/lcar/translate"
)

var f = translate.From

var (
	ErrLengthMismatch = errors.New(f("bit vector length mismatch"))
	ErrSyntax         = errors.New(f("bit vector syntax"))
)

// ErrParse reports the first invalid character of a bit string.
type ErrParse struct {
	Text  string
	Index int
}

func (err ErrParse) Error() string {
	return f("'%v' position %d is not a bit", err.Text, err.Index)
}

func (err ErrParse) Unwrap() error {
	return ErrSyntax
}

const wordBits = 64

// Vector is an immutable sequence of bits.
type Vector struct {
	n     int
	words []uint64
}

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

func alloc(n int) Vector {
	return Vector{n: n, words: make([]uint64, wordsFor(n))}
}

// trim clears the storage bits past the end of the vector.
func (v Vector) trim() Vector {
	if rem := v.n % wordBits; rem != 0 {
		v.words[len(v.words)-1] &= (uint64(1) << rem) - 1
	}
	return v
}

// New returns an all-zero vector of n bits.
func New(n int) Vector {
	if n < 0 {
		n = 0
	}
	return alloc(n)
}

// Ones returns an all-one vector of n bits.
func Ones(n int) (v Vector) {
	v = New(n)
	for w := range v.words {
		v.words[w] = ^uint64(0)
	}
	return v.trim()
}

// FromBools builds a vector from a slice of cell values.
func FromBools(cells []bool) (v Vector) {
	v = alloc(len(cells))
	for i, cell := range cells {
		if cell {
			v.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}
	return
}

// Parse reads a string of '0' and '1' characters, leftmost cell first.
// Underscores are accepted as digit separators.
func Parse(text string) (v Vector, err error) {
	cells := make([]bool, 0, len(text))
	for n, ch := range text {
		switch ch {
		case '0':
			cells = append(cells, false)
		case '1':
			cells = append(cells, true)
		case '_':
		default:
			err = ErrParse{Text: text, Index: n}
			return
		}
	}

	v = FromBools(cells)
	return
}

// MustParse is Parse for known-good constants.
func MustParse(text string) Vector {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of bits.
func (v Vector) Len() int {
	return v.n
}

// Bit returns the value at position i. It panics if i is out of range.
func (v Vector) Bit(i int) bool {
	if i < 0 || i >= v.n {
		panic(f("bit index %d out of range [0,%d)", i, v.n))
	}
	return (v.words[i/wordBits]>>(i%wordBits))&1 != 0
}

// With returns a copy of v with position i set to bit.
func (v Vector) With(i int, bit bool) (out Vector) {
	if i < 0 || i >= v.n {
		panic(f("bit index %d out of range [0,%d)", i, v.n))
	}
	out = v.clone()
	if bit {
		out.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		out.words[i/wordBits] &^= 1 << (i % wordBits)
	}
	return
}

func (v Vector) clone() Vector {
	out := alloc(v.n)
	copy(out.words, v.words)
	return out
}

func (v Vector) binary(o Vector, op func(a, b uint64) uint64) (out Vector, err error) {
	if v.n != o.n {
		err = ErrLengthMismatch
		return
	}
	out = alloc(v.n)
	for w := range out.words {
		out.words[w] = op(v.words[w], o.words[w])
	}
	out = out.trim()
	return
}

// Xor returns the position-wise exclusive or of v and o.
func (v Vector) Xor(o Vector) (Vector, error) {
	return v.binary(o, func(a, b uint64) uint64 { return a ^ b })
}

// And returns the position-wise conjunction of v and o.
func (v Vector) And(o Vector) (Vector, error) {
	return v.binary(o, func(a, b uint64) uint64 { return a & b })
}

// Or returns the position-wise disjunction of v and o.
func (v Vector) Or(o Vector) (Vector, error) {
	return v.binary(o, func(a, b uint64) uint64 { return a | b })
}

// ShiftRight moves every cell one position to the right. The rightmost
// cell is dropped and in enters at position 0.
func (v Vector) ShiftRight(in bool) (out Vector) {
	out = alloc(v.n)
	if v.n == 0 {
		return
	}
	var carry uint64
	if in {
		carry = 1
	}
	for w := range v.words {
		out.words[w] = v.words[w]<<1 | carry
		carry = v.words[w] >> (wordBits - 1)
	}
	return out.trim()
}

// ShiftLeft moves every cell one position to the left. The leftmost cell
// is dropped and in enters at position Len()-1.
func (v Vector) ShiftLeft(in bool) (out Vector) {
	out = alloc(v.n)
	if v.n == 0 {
		return
	}
	for w := range v.words {
		out.words[w] = v.words[w] >> 1
		if w+1 < len(v.words) {
			out.words[w] |= v.words[w+1] << (wordBits - 1)
		}
	}
	if in {
		last := v.n - 1
		out.words[last/wordBits] |= 1 << (last % wordBits)
	}
	return
}

// Equal reports whether v and o have the same length and bits.
func (v Vector) Equal(o Vector) bool {
	if v.n != o.n {
		return false
	}
	for w := range v.words {
		if v.words[w] != o.words[w] {
			return false
		}
	}
	return true
}

// IsZero reports whether every bit is clear.
func (v Vector) IsZero() bool {
	for _, word := range v.words {
		if word != 0 {
			return false
		}
	}
	return true
}

// OnesCount returns the number of set bits.
func (v Vector) OnesCount() (count int) {
	for _, word := range v.words {
		count += bits.OnesCount64(word)
	}
	return
}

// Bools returns the cell values, leftmost first.
func (v Vector) Bools() (cells []bool) {
	cells = make([]bool, v.n)
	for i := range cells {
		cells[i] = v.Bit(i)
	}
	return
}

// Uint64 returns the vector as an integer with position 0 as the most
// significant bit. ok is false for vectors longer than 64 bits.
func (v Vector) Uint64() (value uint64, ok bool) {
	if v.n > wordBits {
		return
	}
	for i := range v.n {
		value <<= 1
		if v.Bit(i) {
			value |= 1
		}
	}
	ok = true
	return
}

// String renders the vector as '0' and '1' characters, leftmost first.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := range v.n {
		if v.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
