// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lcar

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/lcar/bitvec"
)

// Inputs are the signals sampled on one clock edge.
type Inputs struct {
	Reset   bool // Reset input, interpreted by the register's ResetLevel.
	Enable  bool // Advance the register on this edge.
	LeftIn  bool // Left neighbour of the leftmost cell.
	RightIn bool // Right neighbour of the rightmost cell.
}

// Register is a clocked linear cellular automata register. It is owned by
// a single driver; the rule map it references is shared and read-only.
type Register struct {
	Verbose bool       // Set to enable verbose logging.
	Level   ResetLevel // Level of the reset input that asserts reset.

	Ticks int // Clock edges since the last reset.
	Power int // Power (bits flipped) counter since the last reset.

	rules RuleMap
	state bitvec.Vector
}

// NewRegister creates a register over a rule map, in its reset state.
func NewRegister(rules RuleMap) (reg *Register, err error) {
	if rules.Len() == 0 {
		err = ErrWidth{}
		return
	}

	reg = &Register{
		rules: rules,
	}

	reg.Reset()

	return
}

// Reset forces every cell to one.
func (reg *Register) Reset() {
	reg.state = bitvec.Ones(reg.rules.Len())
	reg.Ticks = 0
	reg.Power = 0

	if reg.Verbose {
		log.Printf("reset    %v", reg.state)
	}
}

// Sample applies the asynchronous reset input outside of a clock edge,
// and reports whether it was asserted.
func (reg *Register) Sample(reset bool) (asserted bool) {
	asserted = reg.Level.Asserted(reset)
	if asserted {
		reg.Reset()
	}
	return
}

// Tick performs a single clock edge. An asserted reset wins over enable;
// a disabled edge holds the current state.
func (reg *Register) Tick(in Inputs) (err error) {
	if reg.Sample(in.Reset) {
		return
	}

	reg.Ticks++

	if !in.Enable {
		if reg.Verbose {
			log.Printf("hold     %v", reg.state)
		}
		return
	}

	next, err := Next(reg.state, reg.rules, in.LeftIn, in.RightIn)
	if err != nil {
		return
	}

	flipped, err := next.Xor(reg.state)
	if err != nil {
		return
	}
	reg.Power += flipped.OnesCount()

	reg.state = next

	if reg.Verbose {
		log.Printf("tick[%2d] %v", reg.Ticks, reg.state)
	}

	return
}

// State returns the current cell values.
func (reg *Register) State() bitvec.Vector {
	return reg.state
}

// Width returns the number of cells.
func (reg *Register) Width() int {
	return reg.rules.Len()
}

// RuleMap returns the rule map the register was built with.
func (reg *Register) RuleMap() RuleMap {
	return reg.rules
}

// Defines returns the register's configuration as name/value pairs.
func (reg *Register) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"WIDTH":       fmt.Sprintf("%d", reg.Width()),
		"RULE_MAP":    reg.rules.String(),
		"RESET_LEVEL": reg.Level.String(),
	})
}

// String returns the register state as a string.
func (reg *Register) String() string {
	return fmt.Sprintf("state:%v rules:%v level:%v ticks:%d power:%d",
		reg.state, reg.rules, reg.Level, reg.Ticks, reg.Power)
}
