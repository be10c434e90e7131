// Package ansi holds the SGR escape codes used by the headless commands and
// decides whether a writer should receive them.
package ansi

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Blue    = "\033[34m"
	Yellow  = "\033[33m"
	Green   = "\033[32m"
	Red     = "\033[31m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
)

// Palette is a set of codes to interpolate into output. The zero Palette
// renders plain text.
type Palette struct {
	Reset, Bold, Dim string

	Blue, Yellow, Green, Red, Cyan, Magenta string
}

// Colors returns the full color palette.
func Colors() Palette {
	return Palette{
		Reset: Reset, Bold: Bold, Dim: Dim,
		Blue: Blue, Yellow: Yellow, Green: Green, Red: Red, Cyan: Cyan, Magenta: Magenta,
	}
}

// Enabled reports whether w is a terminal that should receive color.
// Setting NO_COLOR disables color everywhere.
func Enabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// For returns Colors when w is a color terminal and the zero Palette
// otherwise.
func For(w io.Writer) Palette {
	if Enabled(w) {
		return Colors()
	}
	return Palette{}
}
