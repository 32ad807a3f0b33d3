package lcar

import (
	"github.com/ezrec/lcar/bitvec"
	"github.com/ezrec/lcar/gf2"
)

// Maximal reports whether a register using rules, with both boundary
// inputs held at zero, cycles through all 2^n - 1 nonzero states.
func Maximal(rules RuleMap) (ok bool, err error) {
	if rules.Len() == 0 {
		err = ErrWidth{}
		return
	}

	return gf2.Primitive(gf2.CharPoly(rules))
}

// Period steps a register from the all-ones state, with zero boundary
// inputs, until the state repeats. ok is false if the state has not
// returned after limit steps.
func Period(rules RuleMap, limit int) (period int, ok bool, err error) {
	start := bitvec.Ones(rules.Len())
	state := start
	for period < limit {
		state, err = Next(state, rules, false, false)
		if err != nil {
			return
		}
		period++
		if state.Equal(start) {
			ok = true
			return
		}
	}
	return
}
