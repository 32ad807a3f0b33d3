// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lcar

import (
	"github.com/ezrec/lcar/bitvec"
)

// RuleMap selects the update rule of each cell: a set bit selects rule
// 150, a clear bit selects rule 90.
type RuleMap = bitvec.Vector

// Next computes the state following state for one clock edge.
//
// Each cell i becomes left(i) ^ right(i) ^ (state[i] & ruleMap[i]), where
// the leftmost cell's left neighbour is leftIn and the rightmost cell's
// right neighbour is rightIn. With a clear rule bit the self term vanishes
// (rule 90); with a set bit the cell's own value joins the sum (rule 150).
// All cells are computed in parallel, a word at a time.
func Next(state bitvec.Vector, ruleMap RuleMap, leftIn, rightIn bool) (next bitvec.Vector, err error) {
	if state.Len() == 0 || state.Len() != ruleMap.Len() {
		err = ErrWidth{State: state.Len(), RuleMap: ruleMap.Len()}
		return
	}

	// Cell i sees state[i-1] on its left, and state[i+1] on its right.
	left := state.ShiftRight(leftIn)
	right := state.ShiftLeft(rightIn)

	self, err := state.And(ruleMap)
	if err != nil {
		return
	}

	next, err = left.Xor(right)
	if err != nil {
		return
	}

	next, err = next.Xor(self)
	return
}
