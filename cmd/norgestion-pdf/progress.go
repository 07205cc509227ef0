package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const barWidth = 30

// progressBar draws export progress on a terminal, or prints one line per
// milestone when the output is not a terminal.
type progressBar struct {
	w     io.Writer
	isTTY bool
	last  int
	drawn bool
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w, isTTY: isTerminalWriter(w), last: -1}
}

// isTerminalWriter reports whether w is an *os.File pointing to a terminal.
func isTerminalWriter(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Update records a new percentage.
func (b *progressBar) Update(percent int) {
	if percent == b.last {
		return
	}
	b.last = percent
	if !b.isTTY {
		fmt.Fprintf(b.w, "progress: %d%%\n", percent)
		return
	}
	filled := percent * barWidth / 100
	fmt.Fprintf(b.w, "\r[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat("-", barWidth-filled), percent)
	b.drawn = true
}

// Finish ends the bar line.
func (b *progressBar) Finish() {
	if b.drawn {
		fmt.Fprintln(b.w)
		b.drawn = false
	}
}
