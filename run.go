// Completion: 100% - Runtime facade complete
package main

import (
	"errors"
	"os"
	"runtime"
	"unsafe"

	"github.com/xyproto/env/v2"
)

// defaultTapeSize is the byte length of the zero-initialized tape handed
// to the compiled function
const defaultTapeSize = 50000

// tapeSize returns the configured tape length, overridable through the
// BF67_TAPESIZE environment variable
func tapeSize() int {
	n := env.Int("BF67_TAPESIZE", defaultTapeSize)
	if n < 1 {
		return defaultTapeSize
	}
	return n
}

// Run compiles source, maps the generated code and invokes it on a fresh
// zeroed tape. The tape and the executable mapping live for exactly this
// one invocation; the mapping is released on every exit path.
func Run(source string) (int64, error) {
	return RunWithTape(source, make([]byte, tapeSize()))
}

// RunWithTape is Run with a caller-supplied tape, so callers (and tests)
// can observe the cells the program left behind. The compiled function
// receives only the tape's base address; the current position lives in a
// register inside the running code.
func RunWithTape(source string, tape []byte) (int64, error) {
	if len(tape) == 0 {
		return 0, errors.New("empty tape")
	}

	program, err := CompileProgram(source)
	if err != nil {
		return 0, err
	}
	if VerboseMode {
		program.Dump(os.Stderr)
	}

	code, err := GenerateCode(program)
	if err != nil {
		return 0, err
	}

	fn, err := LoadFunction(code)
	if err != nil {
		return 0, err
	}
	defer fn.Release()

	result := fn.Call(uintptr(unsafe.Pointer(&tape[0])))
	runtime.KeepAlive(tape)
	return result, nil
}
