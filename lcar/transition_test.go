package lcar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lcar/bitvec"
)

// nextByCell is the cell-at-a-time reference for Next.
func nextByCell(state, rules bitvec.Vector, leftIn, rightIn bool) bitvec.Vector {
	n := state.Len()
	cells := make([]bool, n)
	for i := range n {
		left := leftIn
		if i > 0 {
			left = state.Bit(i - 1)
		}
		right := rightIn
		if i < n-1 {
			right = state.Bit(i + 1)
		}
		feedback := state.Bit(i) && rules.Bit(i)
		cells[i] = left != right != feedback
	}
	return bitvec.FromBools(cells)
}

func TestNext(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		state   string
		rules   string
		leftIn  bool
		rightIn bool
		next    string
	}){
		{"n2_example", "11", "10", false, false, "01"},
		{"n3_stuck", "000", "110", false, false, "000"},
		{"n3_left", "000", "110", true, false, "100"},
		{"n3_right", "000", "110", false, true, "001"},
		{"n3_both", "000", "110", true, true, "101"},
		{"n1_rule90", "1", "0", false, false, "0"},
		{"n1_rule150", "1", "1", false, false, "1"},
		{"n1_bounds", "0", "0", true, true, "0"},
		{"rule90_all", "0100", "0000", false, false, "1010"},
		{"rule150_all", "0100", "1111", false, false, "1110"},
	}

	for _, entry := range table {
		state := bitvec.MustParse(entry.state)
		rules := bitvec.MustParse(entry.rules)
		next, err := Next(state, rules, entry.leftIn, entry.rightIn)
		assert.NoError(err, entry.name)
		assert.Equal(entry.next, next.String(), entry.name)
		assert.Equal(entry.state, state.String(), entry.name)
	}
}

func TestNext_InvalidLength(t *testing.T) {
	assert := assert.New(t)

	_, err := Next(bitvec.New(3), bitvec.New(4), false, false)
	assert.ErrorIs(err, ErrInvalidLength)

	var werr ErrWidth
	assert.ErrorAs(err, &werr)
	assert.Equal(ErrWidth{State: 3, RuleMap: 4}, werr)

	_, err = Next(bitvec.New(0), bitvec.New(0), false, false)
	assert.ErrorIs(err, ErrInvalidLength)
}

func TestNext_Deterministic(t *testing.T) {
	assert := assert.New(t)

	rules, err := LookupRule(37)
	assert.NoError(err)
	state := bitvec.MustParse("1001011100010101100111010001010110100")

	first, err := Next(state, rules, true, false)
	assert.NoError(err)
	for range 10 {
		again, err := Next(state, rules, true, false)
		assert.NoError(err)
		assert.True(first.Equal(again))
	}
}

func TestNext_RuleSelection(t *testing.T) {
	assert := assert.New(t)

	// Every 4-cell state against every 4-cell rule map and boundary pair.
	for s := range 16 {
		for r := range 16 {
			for b := range 4 {
				state := bitvec.New(4)
				rules := bitvec.New(4)
				for i := range 4 {
					state = state.With(i, (s>>i)&1 != 0)
					rules = rules.With(i, (r>>i)&1 != 0)
				}
				leftIn, rightIn := b&1 != 0, b&2 != 0

				next, err := Next(state, rules, leftIn, rightIn)
				assert.NoError(err)
				assert.Equal(nextByCell(state, rules, leftIn, rightIn).String(), next.String(),
					"state:%v rules:%v left:%v right:%v", state, rules, leftIn, rightIn)

				// Boundary inputs reach only the edge cells.
				flip, err := Next(state, rules, !leftIn, rightIn)
				assert.NoError(err)
				diff, err := flip.Xor(next)
				assert.NoError(err)
				assert.Equal("1000", diff.String())

				flip, err = Next(state, rules, leftIn, !rightIn)
				assert.NoError(err)
				diff, err = flip.Xor(next)
				assert.NoError(err)
				assert.Equal("0001", diff.String())
			}
		}
	}
}

func TestNext_Wide(t *testing.T) {
	assert := assert.New(t)

	// Widths that straddle the storage word boundary.
	for _, width := range []int{63, 64, 65, 100} {
		rules, err := LookupRule(width)
		assert.NoError(err)
		state := bitvec.Ones(width)
		for range 200 {
			want := nextByCell(state, rules, false, true)
			state, err = Next(state, rules, false, true)
			assert.NoError(err)
			assert.True(want.Equal(state), "width %d", width)
		}
	}
}

func FuzzNext(f *testing.F) {
	f.Add(uint64(0b11), uint64(0b01), uint8(2), false, false)
	f.Add(uint64(0), uint64(0b011), uint8(3), true, true)
	f.Add(^uint64(0), uint64(0x5555), uint8(64), true, false)

	f.Fuzz(func(t *testing.T, s uint64, r uint64, width uint8, leftIn, rightIn bool) {
		n := int(width%64) + 1
		cells := make([]bool, n)
		rcells := make([]bool, n)
		for i := range n {
			cells[i] = (s>>i)&1 != 0
			rcells[i] = (r>>i)&1 != 0
		}
		state := bitvec.FromBools(cells)
		rules := bitvec.FromBools(rcells)

		next, err := Next(state, rules, leftIn, rightIn)
		if err != nil {
			t.Fatal(err)
		}
		want := nextByCell(state, rules, leftIn, rightIn)
		if !want.Equal(next) {
			t.Fatalf("state:%v rules:%v got %v want %v", state, rules, next, want)
		}
	})
}
