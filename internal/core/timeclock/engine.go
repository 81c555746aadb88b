package timeclock

import (
	"errors"
	"fmt"
	"time"

	"punchclock/internal/core/model"
	"punchclock/internal/data/store"
	"punchclock/internal/data/timelog"
	"punchclock/internal/util"
)

// Precondition violations. These are user-facing warnings, not failures:
// the command layer prints them and exits zero with no state changed.
var (
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("not clocked in")
)

// Engine is the punch state machine. It is the only writer of the
// timecard and the timelog; every mutation journals first and then
// flushes the whole card.
type Engine struct {
	cards   model.Timecard
	repo    store.Repository
	journal *timelog.Journal
	clock   util.Clock
	today   string
}

func NewEngine(cards model.Timecard, repo store.Repository, journal *timelog.Journal, clock util.Clock) *Engine {
	return &Engine{
		cards:   cards,
		repo:    repo,
		journal: journal,
		clock:   clock,
		today:   util.DateKey(clock.Now()),
	}
}

// Cards exposes the live timecard for read-only projections.
func (e *Engine) Cards() model.Timecard { return e.cards }

// Today returns the ISO date key the engine punches against.
func (e *Engine) Today() string { return e.today }

// Now returns the current HH:MM wall-clock string.
func (e *Engine) Now() string { return util.ClockString(e.clock.Now()) }

// ClockedIn reports whether today has an open punch.
func (e *Engine) ClockedIn() bool {
	return e.cards[e.today].ClockedIn()
}

// PunchResult describes a completed punch.
type PunchResult struct {
	Time       string  // HH:MM the punch was recorded at
	Elapsed    float64 // hours closed by a clock-out
	FirstPunch bool    // set on the first clock-in of the day
}

// ClockIn opens a punch at the current time. Precondition: clocked out.
func (e *Engine) ClockIn() (PunchResult, error) {
	if e.ClockedIn() {
		return PunchResult{}, ErrAlreadyClockedIn
	}

	now := e.Now()
	entry := e.cards[e.today]
	first := !entry.ClockedIn() && entry.Hours == 0
	entry.Punch = now
	e.cards[e.today] = entry

	if err := e.journal.Append(timelog.Record{
		Date:  e.today,
		Time:  now,
		Event: timelog.EventClockIn,
	}); err != nil {
		return PunchResult{}, err
	}
	if err := e.repo.Save(e.cards); err != nil {
		return PunchResult{}, err
	}

	util.LogDebugf("clocked in at %s (first punch: %v)", now, first)
	return PunchResult{Time: now, FirstPunch: first}, nil
}

// ClockOut closes the open punch and adds the elapsed hours to today's
// total. Precondition: clocked in. A clock that appears to have gone
// backwards closes the punch with zero hours instead of recording a
// negative duration.
func (e *Engine) ClockOut() (PunchResult, error) {
	entry := e.cards[e.today]
	punch, open := entry.OpenPunch()
	if !open {
		return PunchResult{}, ErrNotClockedIn
	}

	now := e.Now()
	elapsed, err := HoursBetween(punch, now)
	if err != nil {
		util.LogWarnf("closing punch %s at %s: %v; recording 0 hours", punch, now, err)
		elapsed = 0
	}

	entry.Hours = Round2(entry.Hours + elapsed)
	entry.Punch = model.NoPunch
	e.cards[e.today] = entry

	if err := e.journal.Append(timelog.Record{
		Date:   e.today,
		Time:   now,
		Event:  timelog.EventClockOut,
		Detail: "(" + FormatLogHours(elapsed) + " Hours)",
	}); err != nil {
		return PunchResult{}, err
	}
	if err := e.repo.Save(e.cards); err != nil {
		return PunchResult{}, err
	}

	util.LogDebugf("clocked out at %s after %s hours", now, FormatHours(elapsed))
	return PunchResult{Time: now, Elapsed: elapsed}, nil
}

// Toggle clocks out when in and in when out. The returned flag reports
// the state after the toggle.
func (e *Engine) Toggle() (PunchResult, bool, error) {
	if e.ClockedIn() {
		res, err := e.ClockOut()
		return res, false, err
	}
	res, err := e.ClockIn()
	return res, true, err
}

// TakeBreak clocks out, waits for the countdown, then clocks back in at
// a refreshed "now". Precondition: clocked in. The trailing clock-in
// runs even when the wait is interrupted, so a break can never strand
// the day in a clocked-out state past the interruption point.
func (e *Engine) TakeBreak(minutes int, onOut func(PunchResult), wait func(minutes int)) (PunchResult, error) {
	if !e.ClockedIn() {
		return PunchResult{}, ErrNotClockedIn
	}

	out, err := e.ClockOut()
	if err != nil {
		return PunchResult{}, err
	}
	if onOut != nil {
		onOut(out)
	}
	if wait != nil {
		wait(minutes)
	}
	return e.ClockIn()
}

// EditResult describes a completed hours overwrite.
type EditResult struct {
	Old       float64
	New       float64
	ForcedOut bool // today's open punch was closed before the edit
}

// EditEntry overwrites the stored hours for a date, creating a zeroed
// entry first when none exists. Editing today while clocked in forces a
// clock-out so the open punch cannot later add time on top of the edit.
func (e *Engine) EditEntry(date string, hours float64) (EditResult, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return EditResult{}, fmt.Errorf("not a valid date: %q", date)
	}

	var result EditResult
	if date == e.today && e.ClockedIn() {
		if _, err := e.ClockOut(); err != nil {
			return EditResult{}, err
		}
		result.ForcedOut = true
	}

	if e.cards.Ensure(date) {
		if err := e.repo.Save(e.cards); err != nil {
			return EditResult{}, err
		}
	}

	entry := e.cards[date]
	result.Old = Round2(entry.Hours)
	result.New = Round2(hours)
	entry.Hours = result.New
	e.cards[date] = entry

	if err := e.repo.Save(e.cards); err != nil {
		return EditResult{}, err
	}
	if err := e.journal.Append(timelog.Record{
		Date:   e.today,
		Time:   e.Now(),
		Event:  timelog.EditEvent(date),
		Detail: FormatLogHours(result.Old) + " -> " + FormatLogHours(result.New),
	}); err != nil {
		return EditResult{}, err
	}

	util.LogInfof("edited %s: %s -> %s", date, FormatLogHours(result.Old), FormatLogHours(result.New))
	return result, nil
}
