package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lcar/bitvec"
	"github.com/ezrec/lcar/io"
	"github.com/ezrec/lcar/lcar"
	"github.com/ezrec/lcar/sim"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	src := []string{
		`register "small" {`,
		`  width = 3`,
		`}`,
		`register "custom" {`,
		`  rule_map     = "0110_1"`,
		`  reset_active = "low"`,
		`  ticks        = 100`,
		`  stimulus     = "drive.star"`,
		`  output       = "raw"`,
		`}`,
	}

	file, err := Parse([]byte(strings.Join(src, "\n")), "/runs/test.hcl")
	assert.NoError(err)
	assert.Len(file.Registers, 2)

	small := file.Registers[0]
	assert.Equal("small", small.Name)
	assert.Equal("110", small.RuleMap.String())
	assert.Equal(lcar.ActiveHigh, small.Level)
	assert.Equal(sim.DEFAULT_LIMIT, small.Ticks)
	assert.Equal("", small.Stimulus)
	assert.Equal(sim.FORMAT_BITS, small.Format)

	custom := file.Registers[1]
	assert.Equal("01101", custom.RuleMap.String())
	assert.Equal(lcar.ActiveLow, custom.Level)
	assert.Equal(100, custom.Ticks)
	assert.Equal(filepath.Join("/runs", "drive.star"), custom.Stimulus)
	assert.Equal(sim.FORMAT_RAW, custom.Format)
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		src  string
		err  error
	}){
		{"no_width", `register "a" {}`, lcar.ErrInvalidLength},
		{"range", `register "a" { width = 101 }`, lcar.ErrOutOfRange},
		{"mismatch", `register "a" {
			width    = 4
			rule_map = "110"
		}`, lcar.ErrInvalidLength},
		{"rule_syntax", `register "a" { rule_map = "12" }`, bitvec.ErrSyntax},
		{"level", `register "a" {
			width        = 4
			reset_active = "rising"
		}`, lcar.ErrResetLevel},
		{"format", `register "a" {
			width  = 4
			output = "hex"
		}`, sim.ErrFormat},
		{"ticks", `register "a" {
			width = 4
			ticks = -1
		}`, ErrTicks},
		{"duplicate", `register "a" {
			width = 4
		}
		register "a" {
			width = 5
		}`, ErrDuplicate},
	}

	for _, entry := range table {
		file, err := Parse([]byte(entry.src), "test.hcl")
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Nil(file, entry.name)

		var cerr *ErrConfig
		assert.ErrorAs(err, &cerr, entry.name)
		assert.Equal("a", cerr.Register, entry.name)
	}
}

func TestParse_Syntax(t *testing.T) {
	assert := assert.New(t)

	for _, src := range []string{
		`register "a" {`,
		`register { width = 3 }`,
		`register "a" { colour = "red" }`,
	} {
		_, err := Parse([]byte(src), "bad.hcl")
		var cerr *ErrConfig
		assert.ErrorAs(err, &cerr, src)
		assert.Equal("bad.hcl", cerr.File, src)
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	script := []string{
		"def enable(t):",
		"    return t < width",
	}
	assert.NoError(os.WriteFile(filepath.Join(dir, "drive.star"), []byte(strings.Join(script, "\n")), 0o644))

	run := []string{
		`register "prng" {`,
		`  width    = 4`,
		`  ticks    = 6`,
		`  stimulus = "drive.star"`,
		`}`,
	}
	path := filepath.Join(dir, "run.hcl")
	assert.NoError(os.WriteFile(path, []byte(strings.Join(run, "\n")), 0o644))

	file, err := Load(path)
	assert.NoError(err)
	assert.Len(file.Registers, 1)

	emu, err := file.Registers[0].Simulator()
	assert.NoError(err)
	assert.Equal(6, emu.Limit)

	out := &bytes.Buffer{}
	emu.Tape.Output = out
	emu.Reset()
	assert.NoError(emu.Run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(lines, 6)
	// Enabled for the first four ticks only.
	assert.Equal(lines[3], lines[4])
	assert.Equal(lines[3], lines[5])
	assert.NotEqual(lines[2], lines[3])
}

func TestLoad_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "none.hcl"))
	var cerr *ErrConfig
	assert.ErrorAs(err, &cerr)

	reg := &Register{Name: "x", RuleMap: bitvec.MustParse("10"), Stimulus: filepath.Join(t.TempDir(), "none.star")}
	_, err = reg.Simulator()
	assert.ErrorIs(err, os.ErrNotExist)
}

func runStates(t *testing.T, emu *sim.Simulator) (states []string) {
	for range emu.Limit {
		done, err := emu.Tick()
		assert.NoError(t, err)
		assert.False(t, done)
		states = append(states, emu.State().String())
	}
	return
}

func TestSimulator_ActiveLow(t *testing.T) {
	assert := assert.New(t)

	run := func(level string, script string) []string {
		src := []string{
			`register "p" {`,
			`  width        = 4`,
			`  reset_active = "` + level + `"`,
			`  ticks        = 5`,
			`  output       = "none"`,
		}
		dir := t.TempDir()
		if script != "" {
			path := filepath.Join(dir, "drive.star")
			assert.NoError(os.WriteFile(path, []byte(script), 0o644))
			src = append(src, `  stimulus = "drive.star"`)
		}
		src = append(src, `}`)

		file, err := Parse([]byte(strings.Join(src, "\n")), filepath.Join(dir, "run.hcl"))
		assert.NoError(err)
		emu, err := file.Registers[0].Simulator()
		assert.NoError(err)
		defer emu.Close()

		emu.Reset()
		return runStates(t, emu)
	}

	high := run("high", "")
	assert.NotEqual("1111", high[0])
	assert.Equal(high, run("low", ""))

	// A script without reset(t) idles at the inactive level too.
	enable := "def enable(t):\n    return True"
	assert.Equal(high, run("low", enable))

	// An explicit low reset input holds an active low register in reset.
	held := run("low", "def reset(t):\n    return t >= 2")
	assert.Equal(high[:3], held[2:])
	assert.Equal([]string{"1111", "1111"}, held[:2])
}

func TestRun_Streams(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	assert.NoError(os.WriteFile(filepath.Join(dir, "left.bin"), []byte{0b0000_0101}, 0o644))

	src := []string{
		`register "edge" {`,
		`  width      = 4`,
		`  ticks      = 6`,
		`  left_input = "left.bin"`,
		`  capture    = "edge.cap"`,
		`  output     = "none"`,
		`}`,
	}
	path := filepath.Join(dir, "run.hcl")
	assert.NoError(os.WriteFile(path, []byte(strings.Join(src, "\n")), 0o644))

	file, err := Load(path)
	assert.NoError(err)
	reg := file.Registers[0]
	assert.Equal(filepath.Join(dir, "left.bin"), reg.LeftInput)
	assert.Equal("", reg.RightInput)
	assert.Equal(filepath.Join(dir, "edge.cap"), reg.Capture)

	emu, err := reg.Simulator()
	assert.NoError(err)
	assert.Equal(sim.CaptureSize(4, 6), emu.Capture.Capacity)
	assert.NoError(reg.Run(emu))

	// Expected states, with the left boundary bits of 0x05 LSB first.
	var want []string
	state := bitvec.Ones(4)
	for tick := range 6 {
		state, err = lcar.Next(state, reg.RuleMap, tick == 0 || tick == 2, false)
		assert.NoError(err)
		want = append(want, state.String())
	}

	data, err := os.ReadFile(reg.Capture)
	assert.NoError(err)
	saved := &io.Ring{}
	assert.NoError(saved.Unmarshal(bytes.NewReader(data)))

	var got []string
	for state := range sim.Replay(saved) {
		got = append(got, state.String())
	}
	assert.Equal(want, got)
}

func TestSimulator_MissingInput(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	assert.NoError(os.WriteFile(filepath.Join(dir, "left.bin"), []byte{0xff}, 0o644))

	reg := &Register{
		Name:       "x",
		RuleMap:    bitvec.MustParse("110"),
		Ticks:      3,
		LeftInput:  filepath.Join(dir, "left.bin"),
		RightInput: filepath.Join(dir, "none.bin"),
	}
	_, err := reg.Simulator()
	assert.ErrorIs(err, os.ErrNotExist)
}
