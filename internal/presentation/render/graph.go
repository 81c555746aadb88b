package render

import (
	"io"
	"math"
	"strings"

	"punchclock/internal/core/model"
	"punchclock/internal/core/timeclock"
	"punchclock/internal/data/aggregator"
	"punchclock/internal/data/timelog"
	"punchclock/internal/util"
)

// Renderer draws timecard projections to Out. It reads the timecard and
// the journal records but never writes either.
type Renderer struct {
	Cards       model.Timecard
	Records     []timelog.Record
	Painter     *Painter
	Clock       util.Clock
	TargetHours int
	TargetDays  int
	Out         io.Writer
}

func (r *Renderer) today() string { return util.DateKey(r.Clock.Now()) }
func (r *Renderer) now() string   { return util.ClockString(r.Clock.Now()) }

// GraphLine renders the quarter-hour occupancy timeline for a date:
// |■■--...| with an [Edited] marker when the day was hand-adjusted.
// A live open punch on today renders as occupied up to the current
// quarter.
func (r *Renderer) GraphLine(date string) string {
	liveNow := ""
	if date == r.today() && r.Cards[date].ClockedIn() {
		liveNow = r.now()
	}
	cells, edited := aggregator.DayOccupancy(r.Records, date, liveNow)

	var b strings.Builder
	b.WriteByte('|')
	for _, in := range cells {
		if in {
			b.WriteRune('■')
		} else {
			b.WriteByte('-')
		}
	}
	b.WriteByte('|')
	if edited {
		b.WriteString("    [Edited]")
	}
	return b.String()
}

// ChartLine renders the magnitude bar for a date, one symbol per
// quarter hour. Dates with no entry render as an empty bar.
func (r *Renderer) ChartLine(date string, sym rune) string {
	entry, ok := r.Cards[date]
	if !ok {
		return "[]    0 hours"
	}
	hours := entry.Hours
	if date == r.today() {
		hours = aggregator.LiveHours(r.Cards, date, r.now())
	}
	chars := int(math.Round(hours*4)) - 1
	if chars < 0 {
		chars = 0
	}
	return "[" + strings.Repeat(string(sym), chars) + "]    " +
		timeclock.FormatLogHours(hours) + " hours"
}
