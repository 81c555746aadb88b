package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"punchclock/internal/core/timeclock"
	"punchclock/internal/data/aggregator"
	"punchclock/internal/data/timelog"
	"punchclock/internal/util"
)

// CheckPunch prints the default status line: punch state, the live
// total coloured by its bucket, the distance to the daily target, and
// the last journal entry.
func (r *Renderer) CheckPunch() {
	today := r.today()
	now := r.now()
	live := aggregator.LiveHours(r.Cards, today, now)
	target := float64(r.TargetHours)

	remain := timeclock.Round2(target - live)
	var remainText string
	switch {
	case remain > 0 && remain < 1:
		remainText = "    " + formatMinutes(remain*60) + r.Painter.Paint(" Minutes Remaining", "cyan")
	case remain > 0:
		remainText = "    " + timeclock.FormatLogHours(remain) + " Hours Remaining"
	default:
		remainText = "    " + timeclock.FormatLogHours(math.Abs(remain)) + " Hours Over"
	}

	total := r.Painter.PaintScaled("[Total: "+timeclock.FormatLogHours(live)+"]", live, target)
	if punch, open := r.Cards[today].OpenPunch(); open {
		ago, err := timeclock.HoursBetween(punch, now)
		if err != nil {
			ago = 0
		}
		fmt.Fprintln(r.Out, r.Painter.Paint("\nYou clocked in "+timeclock.FormatLogHours(ago)+" hours ago.    ", "light_blue")+total+remainText)
	} else {
		fmt.Fprintln(r.Out, r.Painter.Paint("\nYou are not clocked in.    ", "yellow")+total+remainText)
	}
	fmt.Fprintln(r.Out, "Last entry: "+timelog.LastStamp(r.Records))
}

// formatMinutes renders minutes to one decimal place, always with a
// decimal point.
func formatMinutes(minutes float64) string {
	return timeclock.FormatLogHours(math.Round(minutes*10) / 10)
}

// FirstPunchBanner prints the box-drawn projection of when the daily
// target will be reached, shown on the first clock-in of a day. Unless
// breaks count as time worked, the default break is added on top.
func (r *Renderer) FirstPunchBanner(includeBreak bool, defaultBreak int) {
	done := r.Clock.Now().Add(time.Duration(r.TargetHours) * time.Hour)
	if !includeBreak {
		done = done.Add(time.Duration(defaultBreak) * time.Minute)
	}
	doneAt := util.ClockString(done)
	hours := fmt.Sprintf("%d", r.TargetHours)

	var plain, painted strings.Builder
	seg := func(text, colour string) {
		plain.WriteString(text)
		painted.WriteString(r.Painter.Paint(text, colour))
	}
	seg("│ Working to ", "cyan")
	seg(doneAt, "light_magenta")
	if includeBreak {
		seg(" will put you at ", "cyan")
	} else {
		seg(" with a ", "cyan")
		seg(fmt.Sprintf("%d", defaultBreak), "light_green")
		seg(" minute break will put you at ", "cyan")
	}
	seg(hours, "light_green")
	seg(" hours │", "cyan")

	bar := strings.Repeat("─", util.DisplayWidth(plain.String()))
	fmt.Fprintln(r.Out, r.Painter.Paint("┌"+bar+"┐", "cyan"))
	fmt.Fprintln(r.Out, painted.String())
	fmt.Fprintln(r.Out, r.Painter.Paint("└"+bar+"┘", "cyan"))
}
