package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/core/model"
	"punchclock/internal/data/timelog"
	"punchclock/internal/util"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// plainScale keeps scale-bucket output uncoloured so assertions can
// match text directly.
func plainScale() []string {
	scale := make([]string, 15)
	for i := range scale {
		scale[i] = "none"
	}
	return scale
}

func newTestRenderer(cards model.Timecard, records []timelog.Record, clock util.Clock) (*Renderer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Renderer{
		Cards:       cards,
		Records:     records,
		Painter:     NewPainter(plainScale()),
		Clock:       clock,
		TargetHours: 8,
		TargetDays:  5,
		Out:         out,
	}, out
}

func monday(hour, minute int) util.FixedClock {
	return util.FixedClock{Instant: time.Date(2024, 1, 15, hour, minute, 0, 0, time.Local)}
}

func TestPaintWrapsKnownColours(t *testing.T) {
	p := NewPainter(plainScale())

	assert.Equal(t, "\033[31mhi\033[0m", p.Paint("hi", "red"))
	assert.Equal(t, "hi", p.Paint("hi", "none"))
	assert.Equal(t, "hi", p.Paint("hi", "mauve"))
}

func TestPaintBucketClampsRange(t *testing.T) {
	scale := plainScale()
	scale[0] = "red"
	scale[14] = "green"
	p := NewPainter(scale)

	assert.Equal(t, "red", p.BucketColour(-3))
	assert.Equal(t, "green", p.BucketColour(99))
}

func TestPainterPadsShortScale(t *testing.T) {
	p := NewPainter([]string{"red"})

	assert.Equal(t, "red", p.BucketColour(0))
	assert.Equal(t, "light_black", p.BucketColour(14))
}

func TestProgressBarDraw(t *testing.T) {
	out := &bytes.Buffer{}
	bar := &ProgressBar{Total: 10, Prefix: "Break: ", Suffix: "(pass ← wait)", Size: 10, Out: out}

	bar.Draw(4)

	assert.Equal(t, "Break: [####......] 4 ← 6 (pass ← wait)  \r", out.String())
}

func TestProgressBarClampsDone(t *testing.T) {
	out := &bytes.Buffer{}
	bar := &ProgressBar{Total: 5, Size: 5, Out: out}

	bar.Draw(8)

	assert.Contains(t, out.String(), "[#####] 5 ← 0")
}

func TestGraphLineRendersShift(t *testing.T) {
	records := []timelog.Record{
		{Date: "2024-01-15", Time: "09:00", Event: timelog.EventClockIn},
		{Date: "2024-01-15", Time: "17:00", Event: timelog.EventClockOut},
	}
	r, _ := newTestRenderer(model.Timecard{}, records, monday(18, 0))

	line := r.GraphLine("2024-01-15")

	cells := []rune(line)
	require.Len(t, cells, 98)
	assert.Equal(t, '|', cells[0])
	assert.Equal(t, '|', cells[97])
	assert.Equal(t, '-', cells[36]) // 08:45
	assert.Equal(t, '■', cells[37]) // 09:00
	assert.Equal(t, '■', cells[68]) // 16:45
	assert.Equal(t, '-', cells[69]) // 17:00
}

func TestGraphLineLiveOpenPunch(t *testing.T) {
	records := []timelog.Record{
		{Date: "2024-01-15", Time: "09:00", Event: timelog.EventClockIn},
	}
	cards := model.Timecard{"2024-01-15": {Hours: 0, Punch: "09:00"}}
	r, _ := newTestRenderer(cards, records, monday(12, 0))

	cells := []rune(r.GraphLine("2024-01-15"))

	assert.Equal(t, '■', cells[48]) // 11:45
	assert.Equal(t, '-', cells[49]) // 12:00, synthesized close
}

func TestGraphLineEditedMarker(t *testing.T) {
	records := []timelog.Record{
		{Date: "2024-01-16", Time: "09:00", Event: timelog.EditEvent("2024-01-15"), Detail: "8.0 -> 6.0"},
	}
	r, _ := newTestRenderer(model.Timecard{}, records, monday(12, 0))

	assert.True(t, strings.HasSuffix(r.GraphLine("2024-01-15"), "    [Edited]"))
}

func TestChartLine(t *testing.T) {
	cards := model.Timecard{
		"2024-01-14": {Hours: 8.5, Punch: model.NoPunch},
		"2024-01-13": {Hours: 0, Punch: model.NoPunch},
	}
	r, _ := newTestRenderer(cards, nil, monday(12, 0))

	assert.Equal(t, "["+strings.Repeat("=", 33)+"]    8.5 hours", r.ChartLine("2024-01-14", '='))
	assert.Equal(t, "[]    0.0 hours", r.ChartLine("2024-01-13", '='))
	assert.Equal(t, "[]    0 hours", r.ChartLine("2024-01-10", '='))
}

func TestChartLineLiveToday(t *testing.T) {
	cards := model.Timecard{"2024-01-15": {Hours: 4, Punch: "13:00"}}
	r, _ := newTestRenderer(cards, nil, monday(15, 0))

	// 4 stored + 2 open = 6 hours, 23 symbols.
	assert.Equal(t, "["+strings.Repeat("*", 23)+"]    6.0 hours", r.ChartLine("2024-01-15", '*'))
}

func TestPlotGraphHeader(t *testing.T) {
	r, out := newTestRenderer(model.Timecard{}, nil, monday(12, 0))

	r.Plot(0, true, false)

	text := stripANSI(out.String())
	assert.Contains(t, text, "<<< Graph for pay period ending 2024-01-20 >>>")
	assert.Contains(t, text, headline)
	assert.Contains(t, text, "Sun |")
	assert.Contains(t, text, "Sat |")
	assert.Contains(t, text, "[Average : 0.0]")
}

func TestPlotChartFooter(t *testing.T) {
	cards := model.Timecard{
		"2024-01-14": {Hours: 8, Punch: model.NoPunch},
		"2024-01-15": {Hours: 6, Punch: model.NoPunch},
	}
	r, out := newTestRenderer(cards, nil, monday(20, 0))

	r.Plot(0, false, true)

	text := stripANSI(out.String())
	assert.Contains(t, text, "<<< Chart for pay period ending 2024-01-20 >>>")
	assert.Contains(t, text, "Avg ["+strings.Repeat("#", 28)+"]    7.0 Hours")
	assert.Contains(t, text, "[Total : 14.0]")
}

func TestPlotGraphBlockFooter(t *testing.T) {
	// 16 target hours per line group keeps the footer short: 10 worked
	// hours is 40 blocks, one full group of 32 plus 8.
	cards := model.Timecard{"2024-01-14": {Hours: 10, Punch: model.NoPunch}}
	r, out := newTestRenderer(cards, nil, monday(20, 0))
	r.TargetHours = 4

	r.Plot(0, true, false)

	text := stripANSI(out.String())
	assert.Contains(t, text, "1 (4 Hr Days)")
	assert.Contains(t, text, "[Total : 10.0]")
	assert.Contains(t, text, strings.Repeat(" ■", 16))
}

func TestPlotCombined(t *testing.T) {
	r, out := newTestRenderer(model.Timecard{}, nil, monday(12, 0))

	r.Plot(0, true, true)

	text := stripANSI(out.String())
	assert.Contains(t, text, "<<< Plots for pay period ending 2024-01-20 >>>")
	assert.Contains(t, text, "Mon |")
	assert.Contains(t, text, "[]    0 hours")
}

func TestSummaryTable(t *testing.T) {
	cards := model.Timecard{
		"2024-01-14": {Hours: 8, Punch: model.NoPunch},
		"2024-01-15": {Hours: 6.25, Punch: model.NoPunch},
	}
	r, out := newTestRenderer(cards, nil, monday(20, 0))

	r.SummaryTable(0)

	text := out.String()
	assert.Contains(t, text, "<<< Summary for pay period ending 2024-01-20 >>>")
	assert.Contains(t, text, "│ Sunday         │ 2024-01-14     │ 8.0            │")
	assert.Contains(t, text, "│ Monday         │ 2024-01-15     │ 6.25           │")
	assert.Contains(t, text, "│ Tuesday        │ 2024-01-16     │                │")
	assert.Contains(t, text, "Total:  14.25")
}

func TestSummaryTableLiveToday(t *testing.T) {
	cards := model.Timecard{"2024-01-15": {Hours: 4, Punch: "13:00"}}
	r, out := newTestRenderer(cards, nil, monday(15, 30))

	r.SummaryTable(0)

	assert.Contains(t, out.String(), "│ 6.5            │")
}

func TestCheckPunchClockedOut(t *testing.T) {
	cards := model.Timecard{"2024-01-15": {Hours: 2, Punch: model.NoPunch}}
	r, out := newTestRenderer(cards, nil, monday(12, 0))

	r.CheckPunch()

	text := stripANSI(out.String())
	assert.Contains(t, text, "You are not clocked in.")
	assert.Contains(t, text, "[Total: 2.0]")
	assert.Contains(t, text, "6.0 Hours Remaining")
	assert.Contains(t, text, "Last entry: No log found...")
}

func TestCheckPunchClockedIn(t *testing.T) {
	cards := model.Timecard{"2024-01-15": {Hours: 4, Punch: "13:00"}}
	records := []timelog.Record{
		{Date: "2024-01-15", Time: "13:00", Event: timelog.EventClockIn,
			Raw: "[2024-01-15 13:00]      Clocked In              "},
	}
	r, out := newTestRenderer(cards, records, monday(15, 30))

	r.CheckPunch()

	text := stripANSI(out.String())
	assert.Contains(t, text, "You clocked in 2.5 hours ago.")
	assert.Contains(t, text, "[Total: 6.5]")
	assert.Contains(t, text, "1.5 Hours Remaining")
	assert.Contains(t, text, "Last entry: [2024-01-15 13:00]      Clocked In")
}

func TestCheckPunchMinutesRemaining(t *testing.T) {
	cards := model.Timecard{"2024-01-15": {Hours: 7.5, Punch: model.NoPunch}}
	r, out := newTestRenderer(cards, nil, monday(16, 0))

	r.CheckPunch()

	assert.Contains(t, stripANSI(out.String()), "30.0 Minutes Remaining")
}

func TestCheckPunchHoursOver(t *testing.T) {
	cards := model.Timecard{"2024-01-15": {Hours: 9.25, Punch: model.NoPunch}}
	r, out := newTestRenderer(cards, nil, monday(18, 0))

	r.CheckPunch()

	assert.Contains(t, stripANSI(out.String()), "1.25 Hours Over")
}

func TestFirstPunchBanner(t *testing.T) {
	r, out := newTestRenderer(model.Timecard{}, nil, monday(9, 0))

	r.FirstPunchBanner(false, 30)

	text := stripANSI(out.String())
	assert.Contains(t, text, "Working to 17:30 with a 30 minute break will put you at 8 hours")
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "└")
}

func TestFirstPunchBannerIncludeBreak(t *testing.T) {
	r, out := newTestRenderer(model.Timecard{}, nil, monday(9, 0))

	r.FirstPunchBanner(true, 30)

	text := stripANSI(out.String())
	assert.Contains(t, text, "Working to 17:00 will put you at 8 hours")
	assert.NotContains(t, text, "minute break")
}

func TestLogListingFiltersOldEntries(t *testing.T) {
	records := []timelog.Record{
		{Date: "2024-01-01", Time: "09:00", Event: timelog.EventClockIn, Raw: "[2024-01-01 09:00]      Clocked In"},
		{Date: "2024-01-10", Time: "09:00", Event: timelog.EventClockIn, Raw: "[2024-01-10 09:00]      Clocked In"},
	}
	r, out := newTestRenderer(model.Timecard{}, records, monday(12, 0))

	r.LogListing(7)

	text := out.String()
	assert.Contains(t, text, "Timestamp               Event                   Duration")
	assert.NotContains(t, text, "2024-01-01")
	assert.Contains(t, text, "[2024-01-10 09:00]      Clocked In")
}

func TestBreakScreenCompletes(t *testing.T) {
	r, out := newTestRenderer(model.Timecard{}, nil, monday(12, 0))
	screen := &BreakScreen{
		Renderer: r,
		Sleep:    func(time.Duration) {},
		Debug:    true,
	}

	interrupted := screen.Wait(3)

	assert.False(t, interrupted)
	text := out.String()
	assert.Contains(t, text, "<<< Clocked out for break >>>")
	assert.Contains(t, text, "(3 minutes)")
	assert.Contains(t, text, "\a")
}

func TestBreakScreenInterrupt(t *testing.T) {
	interrupt := make(chan struct{})
	close(interrupt)
	r, out := newTestRenderer(model.Timecard{}, nil, monday(12, 0))
	screen := &BreakScreen{
		Renderer:  r,
		Interrupt: interrupt,
		Sleep:     func(time.Duration) { time.Sleep(10 * time.Millisecond) },
		Debug:     true,
	}

	interrupted := screen.Wait(30)

	assert.True(t, interrupted)
	assert.Contains(t, out.String(), "[Progress interrupted]")
}

func TestDemoRunsToCompletion(t *testing.T) {
	r, out := newTestRenderer(model.Timecard{}, nil, monday(12, 34))
	demo := &Demo{
		Renderer: r,
		In:       strings.NewReader("\n\n\n"),
		Sleep:    func(time.Duration) {},
	}

	demo.Run()

	text := stripANSI(out.String())
	assert.Contains(t, text, "punchclock [--in | --out ]")
	assert.Contains(t, text, "punchclock --break")
	assert.Contains(t, text, "(End of demo)")
}
