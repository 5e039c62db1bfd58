// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(int(f.Fd()))
}

// ColorEnabled reports whether coloured output should be written to w.
// NO_COLOR disables colour regardless of the terminal.
func ColorEnabled(w io.Writer, lookupEnv func(string) (string, bool)) bool {
	if lookupEnv != nil {
		if _, ok := lookupEnv("NO_COLOR"); ok {
			return false
		}
	}
	return IsTerminal(w)
}
