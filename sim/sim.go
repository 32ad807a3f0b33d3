// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sim is the host harness for a register: it clocks the register,
// draws each tick's inputs from a stimulus, and writes the states out.
package sim

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/lcar/bitvec"
	"github.com/ezrec/lcar/internal"
	"github.com/ezrec/lcar/io"
	"github.com/ezrec/lcar/lcar"
	"github.com/ezrec/lcar/stimulus"
)

const (
	DEFAULT_LIMIT = 32 // Ticks per run, unless configured.
)

var _sim_defines = map[string]string{
	"MIN_WIDTH": fmt.Sprintf("%v", lcar.MinWidth),
	"MAX_WIDTH": fmt.Sprintf("%v", lcar.MaxWidth),
}

// Simulator state. Register + stimulus + output channels.
type Simulator struct {
	Verbose        bool            // If set, enables verbose logging.
	*lcar.Register                 // Reference to the register simulation.
	Stimulus       stimulus.Source // Source of each tick's inputs.

	Format  Format   // What to write per tick.
	Limit   int      // Ticks per run; zero or less runs forever.
	Tape    io.Tape  // Output stream.
	Capture *io.Ring // If set, receives the width and then every state.

	tick int
}

// NewSimulator creates a simulator around a register. A nil source runs
// the register free.
func NewSimulator(reg *lcar.Register, src stimulus.Source) (sim *Simulator) {
	if src == nil {
		src = stimulus.Free
	}

	sim = &Simulator{
		Register: reg,
		Stimulus: src,
		Limit:    DEFAULT_LIMIT,
	}

	return
}

// Defines returns an iterator over all of the defines
func (sim *Simulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_sim_defines),
		sim.Register.Defines(),
		maps.All(map[string]string{
			"FORMAT": sim.Format.String(),
			"LIMIT":  fmt.Sprintf("%d", sim.Limit),
		}),
	)
}

// Close flushes any partially written output, and closes the stimulus if
// it can be closed.
func (sim *Simulator) Close() (err error) {
	if sim.Format == FORMAT_RAW {
		err = sim.Tape.Flush()
	}

	closer, ok := sim.Stimulus.(interface{ Close() error })
	if ok {
		cerr := closer.Close()
		if err == nil {
			err = cerr
		}
	}

	return
}

// Reset the register, the tick count and the capture, and rewind the
// stimulus if it can be rewound.
func (sim *Simulator) Reset() {
	sim.Register.Verbose = sim.Verbose
	sim.Register.Reset()
	sim.tick = 0

	rewinder, ok := sim.Stimulus.(interface{ Rewind() })
	if ok {
		rewinder.Rewind()
	}

	if sim.Capture != nil {
		sim.Capture.Truncate()
	}
}

// Elapsed returns the number of ticks run since the last reset.
func (sim *Simulator) Elapsed() int {
	return sim.tick
}

// Tick performs a single tick of the simulator. done is set, without a
// tick, once the limit has been reached.
func (sim *Simulator) Tick() (done bool, err error) {
	// Set register verbosity
	sim.Register.Verbose = sim.Verbose

	if sim.Limit > 0 && sim.tick >= sim.Limit {
		done = true
		return
	}

	tick := sim.tick
	defer func() {
		if err != nil {
			err = &ErrRuntime{Tick: tick, Err: err}
		}
	}()

	in, err := sim.Stimulus.Inputs(tick)
	if err != nil {
		return
	}

	if sim.Verbose {
		log.Printf("inputs   %+v", in)
	}

	err = sim.Register.Tick(in)
	if err != nil {
		return
	}

	sim.tick++

	err = sim.emit()

	return
}

// Run steps the simulator until the limit is reached.
func (sim *Simulator) Run() (err error) {
	for done, err := sim.Tick(); !done; done, err = sim.Tick() {
		if err != nil {
			return err
		}
	}

	return
}

func (sim *Simulator) emit() (err error) {
	state := sim.Register.State()

	if sim.Capture != nil {
		if sim.Capture.Len() == 0 {
			err = io.SendAsUint8(sim.Capture, uint8(state.Len()))
			if err != nil {
				return
			}
		}
		err = io.SendAsVector(sim.Capture, state)
		if err != nil {
			return
		}
	}

	switch sim.Format {
	case FORMAT_BITS:
		if sim.Tape.Output != nil {
			_, err = fmt.Fprintln(sim.Tape.Output, state.String())
		}
	case FORMAT_RAW:
		err = sim.Tape.Send(state.Bit(state.Len() - 1))
	}

	return
}

// CaptureSize returns the capture capacity, in bits, for ticks states of
// a width cell register.
func CaptureSize(width int, ticks int) int {
	return 8 + width*ticks
}

// Replay reads back the states of a capture, in tick order. A channel
// that is empty, or whose width is zero, yields nothing.
func Replay(ch io.Channel) iter.Seq[bitvec.Vector] {
	return func(yield func(state bitvec.Vector) bool) {
		width := 0
		for value := range io.ReceiveAsUint8(ch) {
			width = int(value)
			break
		}

		for state := range io.ReceiveAsVector(ch, width) {
			if !yield(state) {
				return
			}
		}
	}
}
