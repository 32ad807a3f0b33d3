// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/lcar/bitvec"
	"github.com/ezrec/lcar/config"
	"github.com/ezrec/lcar/gf2"
	"github.com/ezrec/lcar/internal"
	lcio "github.com/ezrec/lcar/io"
	"github.com/ezrec/lcar/lcar"
	"github.com/ezrec/lcar/sim"
	"github.com/ezrec/lcar/translate"
)

func main() {
	var width int
	var ruleMap string
	var ticks int
	var script string
	var left string
	var right string
	var capture string
	var replay string
	var run string
	var output string
	var format string
	var level string
	var table bool
	var check bool
	var defines bool
	var verbose bool

	flag.IntVar(&width, "w", 0, "Register width, for the catalog rule map")
	flag.StringVar(&ruleMap, "m", "", "Rule map (1 = rule 150, 0 = rule 90), leftmost cell first")
	flag.IntVar(&ticks, "n", sim.DEFAULT_LIMIT, "Ticks to run, 0 to run forever")
	flag.StringVar(&script, "s", "", ".star stimulus script")
	flag.StringVar(&left, "left", "", "Left boundary bit stream file")
	flag.StringVar(&right, "right", "", "Right boundary bit stream file")
	flag.StringVar(&capture, "capture", "", "Capture file for every state")
	flag.StringVar(&replay, "replay", "", "Print the states of a capture file, do not run")
	flag.StringVar(&run, "c", "", ".hcl run file; overrides the register flags")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&format, "f", "bits", "Output format: bits, raw or none")
	flag.StringVar(&level, "l", "high", "Reset active level: high or low")
	flag.BoolVar(&table, "t", false, "Print the rule map catalog, do not run")
	flag.BoolVar(&check, "check", false, "Report whether the rule map is maximal, do not run")
	flag.BoolVar(&defines, "d", false, "Print the register defines, do not run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	printer := translate.Printer()

	if table {
		for w, rules := range lcar.RuleTable() {
			printer.Fprintf(ouf, "%3d %v\n", w, rules)
		}
		return
	}

	if len(replay) != 0 {
		err := replayCapture(ouf, replay)
		if err != nil {
			log.Fatalf("%v: %v", replay, err)
		}
		return
	}

	var regs []*config.Register
	if len(run) != 0 {
		file, err := config.Load(run)
		if err != nil {
			log.Fatal(err)
		}
		regs = file.Registers
	} else {
		reg, err := fromFlags(width, ruleMap, ticks, script, format, level)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		reg.LeftInput = left
		reg.RightInput = right
		reg.Capture = capture
		regs = []*config.Register{reg}
	}

	for _, reg := range regs {
		if check {
			ok, err := lcar.Maximal(reg.RuleMap)
			if err != nil {
				log.Fatalf("%v: %v", reg.Name, err)
			}
			printer.Fprintf(ouf, "%v %v maximal:%v %v\n", reg.Name, reg.RuleMap, ok, gf2.CharPoly(reg.RuleMap))
			continue
		}

		emu, err := reg.Simulator()
		if err != nil {
			log.Fatalf("%v: %v", reg.Name, err)
		}
		emu.Verbose = verbose
		emu.Tape.Output = ouf

		if defines {
			for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
				fmt.Fprintf(ouf, "%v.%v=%v\n", reg.Name, key, value)
			}
			emu.Close()
			continue
		}

		if verbose {
			log.Printf("%v: %v", reg.Name, emu.Register)
		}

		err = reg.Run(emu)
		if err != nil {
			log.Fatalf("%v: %v", reg.Name, err)
		}
	}
}

// fromFlags resolves the command line into a register description, the
// same way a run file block is resolved.
func fromFlags(width int, ruleMap string, ticks int, script string, format string, level string) (reg *config.Register, err error) {
	if ticks < 0 {
		err = config.ErrTicks
		return
	}

	reg = &config.Register{
		Name:     "lcar",
		Ticks:    ticks,
		Stimulus: script,
	}

	if len(ruleMap) != 0 {
		reg.RuleMap, err = bitvec.Parse(ruleMap)
		if err != nil {
			return
		}
		if width != 0 && width != reg.RuleMap.Len() {
			err = lcar.ErrWidth{State: width, RuleMap: reg.RuleMap.Len()}
			return
		}
	} else {
		reg.RuleMap, err = lcar.LookupRule(width)
		if err != nil {
			return
		}
	}

	reg.Level, err = lcar.ParseResetLevel(level)
	if err != nil {
		return
	}

	reg.Format, err = sim.ParseFormat(format)
	return
}

// replayCapture prints the states held in a capture file, one per line.
func replayCapture(w io.Writer, path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	ring := &lcio.Ring{}
	err = ring.Unmarshal(file)
	if err != nil {
		return
	}

	for state := range sim.Replay(ring) {
		_, err = fmt.Fprintln(w, state)
		if err != nil {
			return
		}
	}

	return
}
