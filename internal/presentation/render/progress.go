package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"punchclock/internal/util"
)

// ProgressBar redraws a single line in place as units complete:
//
//	prefix [####........] done ← remaining suffix
//
// Purely cosmetic; it never touches persisted state.
type ProgressBar struct {
	Total  int
	Prefix string
	Suffix string
	Size   int // bar width in characters
	Out    io.Writer
}

// NewProgressBar sizes a bar to the current terminal width.
func NewProgressBar(total int, prefix, suffix string) *ProgressBar {
	size := util.TerminalWidth() - util.DisplayWidth(prefix) - util.DisplayWidth(suffix) - 16
	if size < 1 {
		size = 1
	}
	return &ProgressBar{
		Total:  total,
		Prefix: prefix,
		Suffix: suffix,
		Size:   size,
		Out:    os.Stdout,
	}
}

// Draw redraws the bar at done completed units.
func (b *ProgressBar) Draw(done int) {
	if done < 0 {
		done = 0
	}
	if done > b.Total {
		done = b.Total
	}
	filled := 0
	if b.Total > 0 {
		filled = b.Size * done / b.Total
	}
	fmt.Fprintf(b.Out, "%s[%s%s] %d ← %d %s  \r",
		b.Prefix,
		strings.Repeat("#", filled),
		strings.Repeat(".", b.Size-filled),
		done,
		b.Total-done,
		b.Suffix)
}

// Finish terminates the redraw line.
func (b *ProgressBar) Finish() {
	fmt.Fprintln(b.Out)
}
