// Package config loads HCL run files that describe one or more registers
// and how to drive them:
//
//	register "prng" {
//	  width        = 16
//	  rule_map     = "1101_0110_0011_1011" # optional, defaults to the catalog
//	  reset_active = "low"                 # "high" (default) or "low"
//	  ticks        = 1000                  # 0 runs until interrupted
//	  stimulus     = "drive.star"          # relative to this file
//	  left_input   = "left.bin"            # boundary bits, LSB first
//	  right_input  = "right.bin"
//	  capture      = "prng.cap"            # width byte, then every state
//	  output       = "raw"                 # "bits" (default), "raw" or "none"
//	}
//
// Every path is relative to the run file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ezrec/lcar/bitvec"
	"github.com/ezrec/lcar/io"
	"github.com/ezrec/lcar/lcar"
	"github.com/ezrec/lcar/sim"
	"github.com/ezrec/lcar/stimulus"
	"github.com/ezrec/lcar/translate"
)

var f = translate.From

var (
	ErrDuplicate = errors.New(f("register duplicated"))
	ErrTicks     = errors.New(f("ticks must not be negative"))
)

// ErrConfig locates a configuration error.
type ErrConfig struct {
	File     string
	Register string
	Err      error
}

func (err *ErrConfig) Error() string {
	if err.Register == "" {
		return f("%v: %v", err.File, err.Err)
	}
	return f("%v: register %q: %v", err.File, err.Register, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Register is a fully resolved register block.
type Register struct {
	Name     string
	RuleMap  lcar.RuleMap
	Level    lcar.ResetLevel
	Ticks    int
	Stimulus string // Path of the stimulus script, or empty.
	Format   sim.Format

	LeftInput  string // Path of the left boundary bit stream, or empty.
	RightInput string // Path of the right boundary bit stream, or empty.
	Capture    string // Path the captured states are written to, or empty.
}

// File is the content of a run file.
type File struct {
	Path      string
	Registers []*Register
}

type hclRegister struct {
	Name        string  `hcl:"name,label"`
	Width       *int    `hcl:"width,optional"`
	RuleMap     *string `hcl:"rule_map,optional"`
	ResetActive *string `hcl:"reset_active,optional"`
	Ticks       *int    `hcl:"ticks,optional"`
	Stimulus    *string `hcl:"stimulus,optional"`
	Output      *string `hcl:"output,optional"`
	LeftInput   *string `hcl:"left_input,optional"`
	RightInput  *string `hcl:"right_input,optional"`
	Capture     *string `hcl:"capture,optional"`
}

type hclFile struct {
	Registers []*hclRegister `hcl:"register,block"`
}

// Load parses and resolves a run file from disk.
func Load(path string) (file *File, err error) {
	parser := hclparse.NewParser()
	hf, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		err = &ErrConfig{File: path, Err: diags}
		return
	}

	return decode(path, hf)
}

// Parse resolves a run file held in memory. Relative stimulus paths are
// resolved against the directory of filename.
func Parse(src []byte, filename string) (file *File, err error) {
	parser := hclparse.NewParser()
	hf, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		err = &ErrConfig{File: filename, Err: diags}
		return
	}

	return decode(filename, hf)
}

func decode(path string, hf *hcl.File) (file *File, err error) {
	var parsed hclFile
	diags := gohcl.DecodeBody(hf.Body, nil, &parsed)
	if diags.HasErrors() {
		err = &ErrConfig{File: path, Err: diags}
		return
	}

	file = &File{Path: path}
	names := map[string]bool{}
	for _, block := range parsed.Registers {
		if names[block.Name] {
			err = &ErrConfig{File: path, Register: block.Name, Err: ErrDuplicate}
			file = nil
			return
		}
		names[block.Name] = true

		var reg *Register
		reg, err = block.resolve(filepath.Dir(path))
		if err != nil {
			err = &ErrConfig{File: path, Register: block.Name, Err: err}
			file = nil
			return
		}
		file.Registers = append(file.Registers, reg)
	}

	return
}

func (block *hclRegister) resolve(dir string) (reg *Register, err error) {
	reg = &Register{
		Name:  block.Name,
		Ticks: sim.DEFAULT_LIMIT,
	}

	switch {
	case block.RuleMap != nil:
		reg.RuleMap, err = bitvec.Parse(*block.RuleMap)
		if err != nil {
			return
		}
		width := reg.RuleMap.Len()
		if block.Width != nil {
			width = *block.Width
		}
		if width == 0 || width != reg.RuleMap.Len() {
			err = lcar.ErrWidth{State: width, RuleMap: reg.RuleMap.Len()}
			return
		}
	case block.Width != nil:
		reg.RuleMap, err = lcar.LookupRule(*block.Width)
		if err != nil {
			return
		}
	default:
		err = lcar.ErrWidth{}
		return
	}

	if block.ResetActive != nil {
		reg.Level, err = lcar.ParseResetLevel(*block.ResetActive)
		if err != nil {
			return
		}
	}

	if block.Ticks != nil {
		if *block.Ticks < 0 {
			err = ErrTicks
			return
		}
		reg.Ticks = *block.Ticks
	}

	reg.Stimulus = relative(dir, block.Stimulus)
	reg.LeftInput = relative(dir, block.LeftInput)
	reg.RightInput = relative(dir, block.RightInput)
	reg.Capture = relative(dir, block.Capture)

	if block.Output != nil {
		reg.Format, err = sim.ParseFormat(*block.Output)
		if err != nil {
			return
		}
	}

	return
}

func relative(dir string, path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	if filepath.IsAbs(*path) {
		return *path
	}
	return filepath.Join(dir, *path)
}

// Simulator builds a ready-to-run simulator for the register. The caller
// attaches the output tape, and closes the simulator when done.
func (reg *Register) Simulator() (emu *sim.Simulator, err error) {
	lr, err := lcar.NewRegister(reg.RuleMap)
	if err != nil {
		return
	}
	lr.Level = reg.Level

	var src stimulus.Source = stimulus.Idle(reg.Level)
	if reg.Stimulus != "" {
		var text []byte
		text, err = os.ReadFile(reg.Stimulus)
		if err != nil {
			return
		}
		var script *stimulus.Script
		script, err = stimulus.NewScript(reg.Stimulus, text, map[string]int{
			"width": reg.RuleMap.Len(),
		})
		if err != nil {
			return
		}
		script.Level = reg.Level
		src = script
	}

	if reg.LeftInput != "" || reg.RightInput != "" {
		stream := &stimulus.Stream{Base: src}
		defer func() {
			if err != nil {
				stream.Close()
			}
		}()

		stream.Left, err = openTape(reg.LeftInput)
		if err != nil {
			return
		}
		stream.Right, err = openTape(reg.RightInput)
		if err != nil {
			return
		}
		src = stream
	}

	emu = sim.NewSimulator(lr, src)
	emu.Limit = reg.Ticks
	emu.Format = reg.Format

	if reg.Capture != "" {
		emu.Capture = &io.Ring{}
		if reg.Ticks > 0 {
			emu.Capture.Capacity = sim.CaptureSize(reg.RuleMap.Len(), reg.Ticks)
		}
	}

	return
}

func openTape(path string) (ch io.Channel, err error) {
	if path == "" {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		return
	}

	ch = &io.Tape{Input: file}
	return
}

// Run resets and runs a simulator built by Simulator, closes it, and
// writes out the capture if one was requested.
func (reg *Register) Run(emu *sim.Simulator) (err error) {
	emu.Reset()

	err = emu.Run()
	cerr := emu.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		return
	}

	if reg.Capture == "" || emu.Capture == nil {
		return
	}

	file, err := os.Create(reg.Capture)
	if err != nil {
		return
	}

	err = emu.Capture.Marshal(file)
	cerr = file.Close()
	if err == nil {
		err = cerr
	}

	return
}
