// Package console decides how output is presented: decorated for a person at
// a terminal, plain for a pipe or a shell capturing stdout.
package console

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

type Mode int

const (
	ModePipe Mode = iota
	ModeVisual
)

func (m Mode) String() string {
	if m == ModeVisual {
		return "visual"
	}
	return "pipe"
}

func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func Detect(f *os.File) Mode {
	if IsInteractive(f) {
		return ModeVisual
	}
	return ModePipe
}

// Resolve maps an override ("auto", "visual", "pipe") to a mode, detecting
// from f for "auto" or an empty string.
func Resolve(override string, f *os.File) (Mode, error) {
	switch override {
	case "", "auto":
		return Detect(f), nil
	case "visual":
		return ModeVisual, nil
	case "pipe":
		return ModePipe, nil
	default:
		return ModePipe, fmt.Errorf("unknown output mode %q (want auto, visual or pipe)", override)
	}
}
