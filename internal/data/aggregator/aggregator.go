// Package aggregator computes read-only projections over the timecard
// and the timelog. Nothing in this package writes state: live values are
// derived on copies and never flow back into the store.
package aggregator

import (
	"time"

	"punchclock/internal/core/model"
	"punchclock/internal/core/timeclock"
	"punchclock/internal/data/timelog"
	"punchclock/internal/util"
)

// LiveHours returns the hours worked on a date including the elapsed
// time of an open punch. The stored entry is left untouched.
func LiveHours(cards model.Timecard, date, now string) float64 {
	entry, ok := cards[date]
	if !ok {
		return 0
	}
	hours := entry.Hours
	if punch, open := entry.OpenPunch(); open {
		elapsed, err := timeclock.HoursBetween(punch, now)
		if err != nil {
			util.LogWarnf("live projection for %s: %v", date, err)
		} else {
			hours = timeclock.Round2(hours + elapsed)
		}
	}
	return hours
}

// LastSunday returns the most recent Sunday on or before t.
func LastSunday(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// DayHours is one day of a weekly projection. Absent distinguishes a
// day with no timecard entry from a recorded zero-hour day.
type DayHours struct {
	Date    string
	Hours   float64
	Present bool
}

// Week projects the pay period weeksAgo whole weeks back: the seven days
// starting on the Sunday. Today's value is live-adjusted; days with no
// entry are marked absent rather than zero.
func Week(cards model.Timecard, today time.Time, now string, weeksAgo int) [7]DayHours {
	start := LastSunday(today).AddDate(0, 0, -7*weeksAgo)
	todayKey := util.DateKey(today)

	var days [7]DayHours
	for i := 0; i < 7; i++ {
		key := util.DateKey(start.AddDate(0, 0, i))
		days[i].Date = key
		entry, ok := cards[key]
		if !ok {
			continue
		}
		days[i].Present = true
		if key == todayKey {
			days[i].Hours = LiveHours(cards, key, now)
		} else {
			days[i].Hours = entry.Hours
		}
	}
	return days
}

// WeekStats summarizes a weekly projection. Days that are absent or
// recorded zero hours count toward neither the average nor the total.
type WeekStats struct {
	Average float64
	Total   float64
	Counted int
}

// Tally folds a week into its average and total.
func Tally(days [7]DayHours) WeekStats {
	var stats WeekStats
	for _, day := range days {
		if !day.Present || day.Hours == 0 {
			continue
		}
		stats.Total += day.Hours
		stats.Counted++
	}
	stats.Total = timeclock.Round2(stats.Total)
	if stats.Counted > 0 {
		stats.Average = timeclock.Round2(stats.Total / float64(stats.Counted))
	}
	return stats
}

// Colour-scale cut points. Bucket 9 is the first at-or-above-target
// bucket; visual continuity depends on these exact values.
var bucketCuts = [...]float64{
	0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875,
	0.96875, 1, 1.0625, 1.15625, 1.25, 1.375, 1.5,
}

// Buckets is the number of colour buckets on the scale.
const Buckets = len(bucketCuts) + 1

// Classify maps value/target onto the 15-bucket colour scale.
func Classify(value, target float64) int {
	ratio := value / target
	for i, cut := range bucketCuts {
		if ratio < cut {
			return i
		}
	}
	return Buckets - 1
}

// occupancy replay constants
const QuartersPerDay = 96

// DayOccupancy reconstructs the quarter-hour occupancy timeline for a
// date from the timelog: 96 cells, true while clocked in. The initial
// state is inferred from the first punch seen that day (a leading
// clock-out implies the day started clocked in). liveNow, when non-empty,
// is the current HH:MM and closes an open punch at that quarter so a
// live day renders correctly without touching the log. The second
// return reports whether the date has ever been hand-edited.
func DayOccupancy(records []timelog.Record, date, liveNow string) ([QuartersPerDay]bool, bool) {
	var cells [QuartersPerDay]bool

	edited := false
	for _, rec := range records {
		if rec.Event == timelog.EditEvent(date) {
			edited = true
			break
		}
	}

	var punches []timelog.Record
	for _, rec := range records {
		if rec.Date == date && !rec.IsEdit() {
			punches = append(punches, rec)
		}
	}

	state := false
	if len(punches) > 0 && punches[0].Event == timelog.EventClockOut {
		state = true
	}

	// Last event wins within a quarter.
	events := map[int]bool{}
	for _, rec := range punches {
		idx, err := timeclock.QuarterIndex(rec.Time)
		if err != nil || idx >= QuartersPerDay {
			continue
		}
		events[idx] = rec.Event == timelog.EventClockIn
	}
	if liveNow != "" {
		if idx, err := timeclock.QuarterIndex(liveNow); err == nil && idx < QuartersPerDay {
			events[idx] = false
		}
	}

	for q := 0; q < QuartersPerDay; q++ {
		if in, ok := events[q]; ok {
			state = in
		}
		cells[q] = state
	}
	return cells, edited
}
