package util

import "time"

// Clock supplies the wall-clock time. Commands snapshot it once per
// invocation so punches and renders agree on "now"; tests substitute
// a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

// DateKey formats a time as the ISO date key used by the timecard.
func DateKey(t time.Time) string { return t.Format("2006-01-02") }

// ClockString formats a time as the HH:MM wall-clock string used by punches.
func ClockString(t time.Time) string { return t.Format("15:04") }
