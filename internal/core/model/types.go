package model

// NoPunch is the sentinel stored in an entry's time field while clocked out.
// It is part of the timecard file format and must survive round-trips.
const NoPunch = "None"

// Entry is one calendar day on the timecard.
type Entry struct {
	Hours float64 `json:"hrs"`
	Punch string  `json:"time"`
}

// NewEntry returns a zeroed, clocked-out entry.
func NewEntry() Entry {
	return Entry{Hours: 0, Punch: NoPunch}
}

// ClockedIn reports whether the entry has an open punch.
func (e Entry) ClockedIn() bool {
	return e.Punch != "" && e.Punch != NoPunch
}

// OpenPunch returns the HH:MM the current punch began, if one is open.
func (e Entry) OpenPunch() (string, bool) {
	if e.ClockedIn() {
		return e.Punch, true
	}
	return "", false
}

// Timecard maps ISO dates (YYYY-MM-DD) to daily entries.
type Timecard map[string]Entry

// Ensure creates a zeroed entry for date if none exists yet.
// Returns true when a new entry was created.
func (tc Timecard) Ensure(date string) bool {
	if _, ok := tc[date]; ok {
		return false
	}
	tc[date] = NewEntry()
	return true
}
