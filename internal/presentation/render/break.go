package render

import (
	"fmt"
	"strings"
	"time"

	"punchclock/internal/util"
)

// BreakScreen runs the full-screen break countdown: centered banner,
// one progress-bar tick per minute, and a terminal bell when the break
// ends. A signal on interrupt stops the countdown early. Sleep is
// injectable for tests; nil means time.Sleep.
type BreakScreen struct {
	Renderer  *Renderer
	Interrupt <-chan struct{}
	Sleep     func(time.Duration)
	Debug     bool // skip the screen clear so debug output stays visible
}

// Wait counts down the given minutes and reports whether the countdown
// was interrupted.
func (s *BreakScreen) Wait(minutes int) bool {
	sleep := s.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	out := s.Renderer.Out

	width, height := util.TerminalSize()
	padV := height / 3
	padH := width / 2
	msg1 := "<<< Clocked out for break >>>"
	msg2 := fmt.Sprintf("(%d minutes)", minutes)

	if !s.Debug {
		fmt.Fprint(out, util.ClearScreen+util.MoveCursorHome)
		fmt.Fprint(out, strings.Repeat("\n", padV+4))
	}
	fmt.Fprintln(out, center(msg1, padH))
	fmt.Fprintln(out, center(msg2, padH))
	fmt.Fprint(out, strings.Repeat("\n", max(0, padV-8)))

	bar := NewProgressBar(minutes, "Break: ", "(pass ← wait)")
	bar.Out = out
	bar.Draw(0)
	for minute := 1; minute <= minutes; minute++ {
		if s.interrupted(sleep) {
			fmt.Fprintln(out, "\n[Progress interrupted]")
			fmt.Fprint(out, strings.Repeat("\n", padV))
			return true
		}
		bar.Draw(minute)
	}
	bar.Finish()
	fmt.Fprintln(out, "\a")
	return false
}

// interrupted sleeps one minute unless the interrupt arrives first.
func (s *BreakScreen) interrupted(sleep func(time.Duration)) bool {
	done := make(chan struct{})
	go func() {
		sleep(time.Minute)
		close(done)
	}()
	select {
	case <-s.Interrupt:
		return true
	case <-done:
		return false
	}
}

func center(msg string, padH int) string {
	indent := padH - 5 - util.DisplayWidth(msg)/2
	if indent < 0 {
		indent = -indent
	}
	return strings.Repeat(" ", indent) + msg
}
