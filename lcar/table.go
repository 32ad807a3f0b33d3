package lcar

import (
	"iter"
	"strings"

	"github.com/ezrec/lcar/bitvec"
)

const (
	MinWidth = 2   // Narrowest register in the rule map catalog.
	MaxWidth = 100 // Widest register in the rule map catalog.
)

// Trimmed catalog entries, indexed by width.
var _rules [MaxWidth + 1]RuleMap

func init() {
	if len(_catalog) != MaxWidth-MinWidth+1 {
		panic(f("lcar: catalog has %d entries", len(_catalog)))
	}

	for n, entry := range _catalog {
		width := MinWidth + n
		if len(entry) != MaxWidth {
			panic(f("lcar: catalog width %d is not padded", width))
		}
		cells := entry[:width]
		if strings.ContainsRune(cells, _catalogFiller) {
			panic(f("lcar: catalog width %d is short", width))
		}
		if strings.Trim(entry[width:], string(_catalogFiller)) != "" {
			panic(f("lcar: catalog width %d is long", width))
		}
		_rules[width] = bitvec.MustParse(cells)
	}
}

// LookupRule returns the catalog's maximal-length rule map for a register
// of the given width, with exactly width cells.
func LookupRule(width int) (rules RuleMap, err error) {
	if width < MinWidth || width > MaxWidth {
		err = ErrWidthRange(width)
		return
	}

	rules = _rules[width]
	return
}

// RuleTable iterates over every catalog entry, narrowest first.
func RuleTable() iter.Seq2[int, RuleMap] {
	return func(yield func(width int, rules RuleMap) bool) {
		for width := MinWidth; width <= MaxWidth; width++ {
			if !yield(width, _rules[width]) {
				return
			}
		}
	}
}
