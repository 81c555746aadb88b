package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"punchclock/internal/core/timeclock"
	"punchclock/internal/data/aggregator"
)

// headline marks every quarter hour across the 96-cell graph. X, E and N
// stand in for 10, 11 and 12.
const headline = "0---1---2---3---4---5---6---7---8---9---X---E---N---1---2---3---4---5---6---7---8---9---X---E---"

var (
	dayAbbrevs = [7]string{"Sun ", "Mon ", "Tue ", "Wed ", "Thu ", "Fri ", "Sat "}
	dayNames   = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// Plot renders the week weeksAgo whole weeks back as occupancy graphs,
// magnitude charts, or both. Each day line is coloured by its hours
// against the daily target; days with no entry render light_black.
func (r *Renderer) Plot(weeksAgo int, showGraph, showChart bool) {
	days := aggregator.Week(r.Cards, r.Clock.Now(), r.now(), weeksAgo)
	stats := aggregator.Tally(days)
	target := float64(r.TargetHours)

	title, padding := "Plots", 24
	switch {
	case showGraph && !showChart:
		title = "Graph"
	case showChart && !showGraph:
		title, padding = "Chart", 3
	}
	fmt.Fprintf(r.Out, "\n\n\n%s<<< %s for pay period ending %s >>>\n",
		strings.Repeat(" ", padding), title, days[6].Date)

	switch {
	case showGraph && !showChart:
		fmt.Fprintln(r.Out, "     "+headline)
		for i, day := range days {
			fmt.Fprintln(r.Out, r.paintDay(dayAbbrevs[i]+r.GraphLine(day.Date), day))
		}
		fmt.Fprintln(r.Out, r.Painter.PaintScaled(
			"    [Average : "+timeclock.FormatLogHours(stats.Average)+"]", stats.Average, target))
		r.blockFooter(stats.Total)

	case showChart && !showGraph:
		fmt.Fprintln(r.Out, r.chartHeadline())
		for i, day := range days {
			fmt.Fprintln(r.Out, r.paintDay(dayAbbrevs[i]+r.ChartLine(day.Date, '='), day))
		}
		fmt.Fprintln(r.Out)
		fmt.Fprint(r.Out, r.Painter.PaintScaled(r.averageBar(stats.Average)+" ", stats.Average, target))
		fmt.Fprintln(r.Out, r.Painter.PaintScaled(
			"[Total : "+timeclock.FormatLogHours(stats.Total)+"]",
			stats.Total, target*float64(r.TargetDays)))
		fmt.Fprintln(r.Out)

	default:
		fmt.Fprintln(r.Out, "     "+r.scaledHeadline())
		for i, day := range days {
			fmt.Fprintln(r.Out, r.paintDay(dayAbbrevs[i]+r.GraphLine(day.Date), day))
			fmt.Fprintln(r.Out, r.paintDay("    "+r.ChartLine(day.Date, '='), day))
			fmt.Fprintln(r.Out)
		}
		fmt.Fprintln(r.Out, r.Painter.PaintScaled(r.averageBar(stats.Average), stats.Average, target))
		r.blockFooter(stats.Total)
	}
}

// paintDay colours a rendered line by the day's hours bucket. Absent
// days get the idle colour rather than bucket zero.
func (r *Renderer) paintDay(line string, day aggregator.DayHours) string {
	if !day.Present {
		return r.Painter.Paint(line, "light_black")
	}
	return r.Painter.PaintScaled(line, day.Hours, float64(r.TargetHours))
}

// chartHeadline is a 50-dash ruler coloured quarter by quarter against
// the daily target.
func (r *Renderer) chartHeadline() string {
	var b strings.Builder
	b.WriteString(r.Painter.Paint("-----", "light_black"))
	for q := 1; q <= 50; q++ {
		b.WriteString(r.Painter.PaintScaled("-", float64(q), float64(r.TargetHours*4)))
	}
	return b.String()
}

// scaledHeadline colours the hour-mark headline cell by cell against
// the daily target.
func (r *Renderer) scaledHeadline() string {
	var b strings.Builder
	for i, ch := range headline {
		b.WriteString(r.Painter.PaintScaled(string(ch), float64(i), float64(r.TargetHours*4)))
	}
	return b.String()
}

func (r *Renderer) averageBar(average float64) string {
	return "Avg [" + strings.Repeat("#", int(math.Round(average*4))) + "]    " +
		timeclock.FormatLogHours(average) + " Hours"
}

// blockFooter renders the week total as one block per quarter hour,
// wrapped into groups of one target day each. Group labels count the
// days; the label for the weekly target day is highlighted. Blocks are
// coloured against the full weekly target.
func (r *Renderer) blockFooter(total float64) {
	blocks := int(math.Round(total * 4))
	if blocks == 0 {
		fmt.Fprintln(r.Out)
		return
	}
	perDay := r.TargetHours * 4
	scaleMax := float64(perDay * r.TargetDays)
	indent := strings.Repeat(" ", max(0, 48-perDay))

	var line strings.Builder
	line.WriteString(indent)
	day := 1
	carriage := 0
	for block := 1; block <= blocks; block++ {
		line.WriteString(r.Painter.PaintScaled(" ■", float64(block), scaleMax))
		if block == blocks {
			line.WriteString(r.Painter.PaintScaled(
				" [Total : "+timeclock.FormatLogHours(timeclock.Round2(total))+"]",
				float64(block), scaleMax))
			break
		}
		carriage++
		if carriage == perDay {
			label := strconv.Itoa(day)
			if day == r.TargetDays {
				label = r.Painter.Paint(label, "light_magenta")
			}
			line.WriteString("  " + label)
			if day == 1 {
				line.WriteString(" (" + strconv.Itoa(r.TargetHours) + " Hr Days)")
			}
			fmt.Fprintln(r.Out, line.String())
			line.Reset()
			line.WriteString(indent)
			day++
			carriage = 0
		}
	}
	fmt.Fprintln(r.Out, line.String())
	fmt.Fprintln(r.Out)
}

// SummaryTable renders the week weeksAgo weeks back as a box-drawn
// Day/Date/Hours table with the weekly total under it. Every recorded
// day counts toward the total, zero-hour days included.
func (r *Renderer) SummaryTable(weeksAgo int) {
	days := aggregator.Week(r.Cards, r.Clock.Now(), r.now(), weeksAgo)

	var b strings.Builder
	fmt.Fprintf(&b, "\n <<< Summary for pay period ending %s >>> \n", days[6].Date)
	b.WriteString("┌────────────────┬────────────────┬────────────────┐\n")
	b.WriteString("│     DAY        │     DATE       │     HOURS      │\n")
	b.WriteString("╞════════════════╪════════════════╪════════════════╡\n")

	total := 0.0
	for i, day := range days {
		hours := " "
		if day.Present {
			hours = timeclock.FormatLogHours(timeclock.Round2(day.Hours))
			total += day.Hours
		}
		fmt.Fprintf(&b, "│ %-15s│ %-15s│ %-15s│\n", dayNames[i], day.Date, hours)
		if i < 6 {
			b.WriteString("├────────────────┼────────────────┼────────────────┤\n")
		} else {
			b.WriteString("└────────────────┴────────────────┴────────────────┘\n")
		}
	}
	fmt.Fprintf(&b, "                            Total:  %-15s \n", timeclock.FormatLogHours(timeclock.Round2(total)))
	b.WriteString("════════════════════════════════════════════════════\n")
	fmt.Fprintln(r.Out, b.String())
}
