package lcar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lcar/bitvec"
)

func TestMaximal(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		rules   string
		maximal bool
	}){
		{"10", true},
		{"01", true},
		{"11", false},
		{"00", false},
		{"110", true},
		{"111", false},
		{"000", false},
	}

	for _, entry := range table {
		rules := bitvec.MustParse(entry.rules)
		ok, err := Maximal(rules)
		assert.NoError(err, entry.rules)
		assert.Equal(entry.maximal, ok, entry.rules)

		// Cross-check against a brute force walk.
		width := rules.Len()
		period, cycled, err := Period(rules, 1<<width)
		assert.NoError(err)
		assert.Equal(entry.maximal, cycled && period == (1<<width)-1, entry.rules)
	}

	_, err := Maximal(bitvec.New(0))
	assert.ErrorIs(err, ErrInvalidLength)
}

func TestPeriod_Limit(t *testing.T) {
	assert := assert.New(t)

	rules, err := LookupRule(12)
	assert.NoError(err)

	period, ok, err := Period(rules, 100)
	assert.NoError(err)
	assert.False(ok)
	assert.Equal(100, period)

	_, _, err = Period(bitvec.New(0), 10)
	assert.ErrorIs(err, ErrInvalidLength)
}
