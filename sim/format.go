package sim

import (
	"strings"
)

// Format selects what the simulator writes for each tick.
type Format int

//go:generate go tool stringer -type=Format -trimprefix=FORMAT_
const (
	FORMAT_BITS = Format(0) // One line per tick with every cell.
	FORMAT_RAW  = Format(1) // The rightmost cell, packed LSB first into bytes.
	FORMAT_NONE = Format(2) // No output.
)

// ParseFormat accepts a format name in any case.
func ParseFormat(text string) (format Format, err error) {
	for format = FORMAT_BITS; format <= FORMAT_NONE; format++ {
		if strings.EqualFold(text, format.String()) {
			return
		}
	}

	format = FORMAT_BITS
	err = ErrFormat
	return
}
