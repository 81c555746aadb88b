// Package render turns aggregator projections into terminal output:
// occupancy graphs, magnitude charts, the weekly summary table, the
// punch status line, and the break countdown. Renderers only read
// state; they never touch the store or the timelog.
package render

import (
	"punchclock/internal/data/aggregator"
)

const ansiReset = "\033[0m"

// palette maps the colour names accepted in color_order to ANSI codes.
var palette = map[string]string{
	"red":           "\033[31m",
	"green":         "\033[32m",
	"yellow":        "\033[33m",
	"blue":          "\033[34m",
	"magenta":       "\033[35m",
	"cyan":          "\033[36m",
	"white":         "\033[37m",
	"none":          ansiReset,
	"light_black":   "\033[90m",
	"light_red":     "\033[91m",
	"light_green":   "\033[92m",
	"light_yellow":  "\033[93m",
	"light_blue":    "\033[94m",
	"light_magenta": "\033[95m",
	"light_cyan":    "\033[96m",
	"light_white":   "\033[97m",
}

// Painter colours text by name or by colour-scale bucket, keeping the
// rendering code independent of the terminal colour vocabulary.
type Painter struct {
	scale []string
}

// NewPainter builds a painter over the configured 15-colour scale.
// Short lists are padded so bucket lookups cannot go out of range.
func NewPainter(scale []string) *Painter {
	padded := make([]string, aggregator.Buckets)
	for i := range padded {
		if i < len(scale) && scale[i] != "" {
			padded[i] = scale[i]
		} else {
			padded[i] = "light_black"
		}
	}
	return &Painter{scale: padded}
}

// Paint wraps text in the ANSI code for a named colour. Unknown names
// render unpainted.
func (p *Painter) Paint(text, colour string) string {
	code, ok := palette[colour]
	if !ok || colour == "none" {
		return text
	}
	return code + text + ansiReset
}

// BucketColour returns the configured colour name for a scale bucket.
func (p *Painter) BucketColour(bucket int) string {
	if bucket < 0 {
		bucket = 0
	}
	if bucket >= len(p.scale) {
		bucket = len(p.scale) - 1
	}
	return p.scale[bucket]
}

// PaintBucket colours text by its colour-scale bucket.
func (p *Painter) PaintBucket(text string, bucket int) string {
	return p.Paint(text, p.BucketColour(bucket))
}

// PaintScaled colours text by classifying value against target.
func (p *Painter) PaintScaled(text string, value, target float64) string {
	return p.PaintBucket(text, aggregator.Classify(value, target))
}
