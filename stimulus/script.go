package stimulus

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lcar/lcar"
)

// Names of the script functions that drive each input.
const (
	FUNC_RESET  = "reset"
	FUNC_ENABLE = "enable"
	FUNC_LEFT   = "left"
	FUNC_RIGHT  = "right"
)

// ErrScript locates a failure inside a stimulus script.
type ErrScript struct {
	Name string // Script file name.
	Func string // Function being called, if any.
	Tick int
	Err  error
}

func (err *ErrScript) Error() string {
	if err.Func == "" {
		return f("%v: %v", err.Name, err.Err)
	}
	return f("%v: %v(%d): %v", err.Name, err.Func, err.Tick, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrResult reports a script function that returned neither a bool nor an
// int.
type ErrResult string

func (err ErrResult) Error() string {
	return f("%v result is not a bool or int", string(err))
}

func (err ErrResult) Is(target error) bool {
	return target == ErrStimulus
}

// ErrBinding reports a top-level name that should be a function of one
// argument but is not.
type ErrBinding string

func (err ErrBinding) Error() string {
	return f("%v must be a function of one argument", string(err))
}

func (err ErrBinding) Is(target error) bool {
	return target == ErrStimulus
}

// Script is a Source computed by Starlark functions.
type Script struct {
	Name  string
	Level lcar.ResetLevel // Without reset(t), the reset input idles inactive for Level.

	thread *starlark.Thread
	funcs  map[string]starlark.Callable
}

var _ Source = (*Script)(nil)

// NewScript executes the script source once, binding its input functions.
// src is anything accepted by starlark.ExecFileOptions: a string, []byte
// or io.Reader. The script sees the predeclared integer constants in
// defines (for example "width").
func NewScript(name string, src any, defines map[string]int) (script *Script, err error) {
	script = &Script{
		Name:   name,
		thread: &starlark.Thread{Name: name},
		funcs:  map[string]starlark.Callable{},
	}

	defer func() {
		if err != nil {
			err = &ErrScript{Name: name, Err: err}
			script = nil
		}
	}()

	pred := starlark.StringDict{}
	for key, value := range defines {
		pred[key] = starlark.MakeInt(value)
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, script.thread, name, src, pred)
	if err != nil {
		return
	}

	for _, key := range []string{FUNC_RESET, FUNC_ENABLE, FUNC_LEFT, FUNC_RIGHT} {
		value, ok := globals[key]
		if !ok {
			continue
		}
		fn, ok := value.(*starlark.Function)
		if !ok || fn.NumParams() != 1 {
			err = ErrBinding(key)
			return
		}
		script.funcs[key] = fn
	}

	return
}

func (script *Script) call(key string, tick int, def bool) (value bool, err error) {
	fn, ok := script.funcs[key]
	if !ok {
		value = def
		return
	}

	defer func() {
		if err != nil {
			err = &ErrScript{Name: script.Name, Func: key, Tick: tick, Err: err}
		}
	}()

	rc, err := starlark.Call(script.thread, fn, starlark.Tuple{starlark.MakeInt(tick)}, nil)
	if err != nil {
		return
	}

	switch rc := rc.(type) {
	case starlark.Bool:
		value = bool(rc)
	case starlark.Int:
		value = rc.Sign() != 0
	default:
		err = ErrResult(key)
	}

	return
}

// Inputs evaluates the script functions for a tick.
func (script *Script) Inputs(tick int) (in lcar.Inputs, err error) {
	in.Reset, err = script.call(FUNC_RESET, tick, script.Level.Inactive())
	if err != nil {
		return
	}
	in.Enable, err = script.call(FUNC_ENABLE, tick, true)
	if err != nil {
		return
	}
	in.LeftIn, err = script.call(FUNC_LEFT, tick, false)
	if err != nil {
		return
	}
	in.RightIn, err = script.call(FUNC_RIGHT, tick, false)
	return
}
