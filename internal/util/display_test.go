package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "short string", in: "Sun", width: 5, want: "Sun  "},
		{name: "exact width", in: "Sunday", width: 6, want: "Sunday"},
		{name: "longer than width", in: "Saturday", width: 4, want: "Saturday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadRight(tt.in, tt.width))
		})
	}
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "  8.5", PadLeft("8.5", 5))
	assert.Equal(t, "8.525", PadLeft("8.525", 3))
}

func TestDisplayWidthWideRunes(t *testing.T) {
	// Occupancy cells render with a wide block character.
	assert.Greater(t, DisplayWidth("■"), 0)
	assert.Equal(t, 3, DisplayWidth("abc"))
}
