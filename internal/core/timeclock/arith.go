// Package timeclock implements the punch state machine and the wall-clock
// arithmetic it depends on. Times are same-day HH:MM strings; worked time
// is kept as decimal hours rounded to two places.
package timeclock

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseClock validates an HH:MM wall-clock string.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

// Decimal converts an HH:MM string to decimal hours.
func Decimal(s string) (float64, error) {
	h, m, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return float64(h) + float64(m)/60, nil
}

// HoursBetween returns t2 - t1 in decimal hours, rounded to two places.
// Both arguments are same-day wall-clock times; a t2 earlier than t1 is an
// error rather than a silent negative duration.
func HoursBetween(t1, t2 string) (float64, error) {
	h1, err := Decimal(t1)
	if err != nil {
		return 0, err
	}
	h2, err := Decimal(t2)
	if err != nil {
		return 0, err
	}
	if h2 < h1 {
		return 0, fmt.Errorf("time %s is earlier than %s: punches must open and close on the same day", t2, t1)
	}
	return Round2(h2 - h1), nil
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// QuarterIndex snaps an HH:MM time to the nearest quarter-hour slot.
// Values can reach 96 for times within 7 minutes of midnight; callers
// treating the day as 96 cells ignore that overflow slot.
func QuarterIndex(s string) (int, error) {
	h, err := Decimal(s)
	if err != nil {
		return 0, err
	}
	return int(math.Round(h * 4)), nil
}

// FormatHours renders decimal hours the way they appear in charts and
// tables: no trailing zeros, e.g. "8.5", "0", "6.25".
func FormatHours(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}

// FormatLogHours renders decimal hours for timelog details, always with a
// decimal point, e.g. "0.0 -> 6.25".
func FormatLogHours(v float64) string {
	s := strconv.FormatFloat(Round2(v), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
