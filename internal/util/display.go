package util

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	ClearScreen    = "\033[2J"
	MoveCursorHome = "\033[H"
	ClearLine      = "\033[2K"
)

// TerminalSize returns the terminal dimensions with a sane fallback for
// pipes and dumb terminals.
func TerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80, 24
	}
	return w, h
}

// TerminalWidth returns the terminal width with fallback
func TerminalWidth() int {
	w, _ := TerminalSize()
	return w
}

// DisplayWidth calculates the actual display width of a string, accounting
// for wide runes like the block cells used in graphs.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads a string to a specific display width
func PadRight(s string, width int) string {
	actual := DisplayWidth(s)
	if actual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-actual)
}

// PadLeft pads a string on the left to a specific display width
func PadLeft(s string, width int) string {
	actual := DisplayWidth(s)
	if actual >= width {
		return s
	}
	return strings.Repeat(" ", width-actual) + s
}
