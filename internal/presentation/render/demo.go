package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"punchclock/internal/data/aggregator"
)

const demoPace = 250 * time.Millisecond

// Demo walks through the punch, break, and chart output with canned
// examples. In reads the Enter presses that advance it; Sleep paces the
// lines and is injectable for tests.
type Demo struct {
	Renderer *Renderer
	In       io.Reader
	Sleep    func(time.Duration)
}

func (d *Demo) Run() {
	sleep := d.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	out := d.Renderer.Out
	paint := d.Renderer.Painter
	input := bufio.NewReader(d.In)
	now := d.Renderer.now()
	pause := func() { sleep(demoPace) }
	say := func(line string) {
		fmt.Fprintln(out, line)
		pause()
	}
	prompt := func(line string) {
		fmt.Fprint(out, line)
		input.ReadString('\n')
	}

	fmt.Fprint(out, "\n\n")
	say("┎─────────────────────────────── punchclock [--in | --out ] ────────────────────────────────\n┃")
	if int(now[4]-'0')%2 == 0 {
		say("┃" + paint.Paint("["+now+"] You are now clocked in.", "light_cyan") + " (Example only)")
	} else {
		say("┃" + paint.Paint("["+now+"] You are now clocked out.", "light_yellow") + " (Example only)")
	}
	say("┃   ↑                        ↑")
	say("┃ Current Time              Event")
	prompt("┃\n┃ (Press enter for next demo)")

	fmt.Fprint(out, "\n\n")
	say("┎──────────────────────────────────── punchclock --break ───────────────────────────────────\n┃")
	say("┃ The '--break' option will clock you out for the specified time and show a progress bar for the duration of the break.")
	say("┃ Once the break is over, you will be clocked back in automatically.")
	say("┃ A keyboard interrupt will stop the break and clock you back in as well.")
	say("┃")
	prompt("┃ (Press enter to see an example of the progress bar that is used for this function.)")
	pause()
	say("┃")
	say("┃ " + paint.Paint("[Clocked out]", "light_yellow") + " (Example only)")
	say("┃")
	bar := NewProgressBar(40, "┃    Break :", "(pass ← wait)")
	bar.Out = out
	bar.Draw(0)
	for i := 1; i <= 40; i++ {
		sleep(50 * time.Millisecond)
		bar.Draw(i)
	}
	bar.Finish()
	say("┃")
	say("┃ " + paint.Paint("[Clocked in]", "light_cyan") + " (Example only)")
	say("┃")
	prompt("┃ (Press enter for next demo)")

	fmt.Fprint(out, "\n\n")
	say("┎────────────────────────────── punchclock [--chart | --graph] ─────────────────────────────")
	say("┃ These options will graphically display hours per day. The following is a '--chart' example.\n┃")
	const demoScale = 32.0
	digits := [3]int{int(now[4] - '0'), int(now[3] - '0'), int(now[1] - '0')}
	for i, offset := range [3]int{18, 38, 28} {
		chars := digits[i]
		if chars == 0 {
			chars = 10
		}
		chars += offset
		say(fmt.Sprintf("┃ Day %d", i+1) +
			paint.PaintScaled("["+strings.Repeat("=", chars-1)+"]", float64(chars), demoScale))
	}
	say("┃")
	var scale strings.Builder
	scale.WriteString("┃ Scale" + paint.PaintBucket("[", 0))
	for q := 1; q <= 48; q++ {
		scale.WriteString(paint.PaintScaled("=", float64(q), demoScale))
	}
	scale.WriteString(paint.PaintBucket("]", aggregator.Buckets-1))
	say(scale.String())
	say("┃" + strings.Repeat(" ", 38) + paint.Paint("↑", "light_green"))
	say("┃" + strings.Repeat(" ", 36) + paint.Paint("Target", "light_green"))
	fmt.Fprint(out, "\n\n")
	pause()
	say("(End of demo)")
	fmt.Fprintln(out)
}
