// Package commands wires the CLI flags to the punch engine and the
// renderers. All punch flags are mutually exclusive; --debug combines
// with any of them.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"punchclock/internal/config"
	"punchclock/internal/core/timeclock"
	"punchclock/internal/data/store"
	"punchclock/internal/data/timelog"
	"punchclock/internal/presentation/render"
	"punchclock/internal/util"
)

const version = "1.0.0"

// noDate marks a bare --edit with no value.
const noDate = "no_date"

var (
	// Logging related
	debug bool

	// Punch commands
	inFlag     bool
	outFlag    bool
	toggleFlag bool
	breakMins  int

	// Reporting commands
	logDays    int
	sumWeeks   int
	graphWeeks int
	chartWeeks int
	gcWeeks    int
	cgWeeks    int

	// Maintenance commands
	editDate string
	demoFlag bool

	rootCmd = &cobra.Command{
		Use:     "punchclock",
		Short:   "A timecard program",
		Version: version,
		Long: `punchclock is a personal timecard tool: punch in and out, take
timed breaks, and review your hours as graphs, charts, and summaries.

Arguments are mutually exclusive. (Except --debug)

Examples:
  punchclock            # Show punch status
  punchclock -i         # Clock in
  punchclock -o         # Clock out
  punchclock -b         # Take the default break
  punchclock --graph    # Occupancy graph for the current week
  punchclock -s=1       # Summary table for last week`,
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	flags := rootCmd.Flags()

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"Print debug information.")

	flags.BoolVarP(&inFlag, "in", "i", false, "Clock in.")
	flags.BoolVarP(&outFlag, "out", "o", false, "Clock out.")
	flags.BoolVarP(&toggleFlag, "toggle", "t", false,
		"Clock in if out, clock out if in.")

	flags.IntVarP(&breakMins, "break", "b", 0,
		"Clock out for M minutes and clock back in. (default: from config)")
	flags.Lookup("break").NoOptDefVal = "0"

	flags.IntVarP(&logDays, "log", "l", 7, "Print log for last N days.")
	flags.Lookup("log").NoOptDefVal = "7"
	flags.IntVarP(&sumWeeks, "sum", "s", 0, "Print summary for Nth week ago.")
	flags.Lookup("sum").NoOptDefVal = "0"
	flags.IntVarP(&graphWeeks, "graph", "g", 0,
		"Print graphical summary for Nth week ago.")
	flags.Lookup("graph").NoOptDefVal = "0"
	flags.IntVarP(&chartWeeks, "chart", "c", 0,
		"Print chart summary for Nth week ago.")
	flags.Lookup("chart").NoOptDefVal = "0"
	flags.IntVar(&gcWeeks, "gc", 0, "Combines graph and chart for Nth week ago.")
	flags.Lookup("gc").NoOptDefVal = "0"
	flags.IntVar(&cgWeeks, "cg", 0, "Alias for --gc.")
	flags.Lookup("cg").NoOptDefVal = "0"
	flags.MarkHidden("cg")

	flags.StringVar(&editDate, "edit", "", "Edit timecard for Date. (YYYY-MM-DD)")
	flags.Lookup("edit").NoOptDefVal = noDate
	flags.BoolVar(&demoFlag, "demo", false, "Run the demo.")
	flags.MarkHidden("demo")

	rootCmd.MarkFlagsMutuallyExclusive("in", "out", "toggle", "break",
		"log", "sum", "graph", "chart", "gc", "cg", "edit", "demo")
}

// command is the decoded invocation: exactly one kind per run.
type command struct {
	kind string
	n    int
	date string
}

// decodeCommand picks the single command from the flag set. Flags are
// checked in a fixed precedence order; with the mutual-exclusion group
// in place only one can be set anyway.
func decodeCommand(flags *pflag.FlagSet) command {
	switch {
	case inFlag:
		return command{kind: "in"}
	case outFlag:
		return command{kind: "out"}
	case toggleFlag:
		return command{kind: "toggle"}
	case flags.Changed("break"):
		return command{kind: "break", n: breakMins}
	case flags.Changed("log"):
		return command{kind: "log", n: logDays}
	case flags.Changed("sum"):
		return command{kind: "sum", n: sumWeeks}
	case flags.Changed("graph"):
		return command{kind: "graph", n: graphWeeks}
	case flags.Changed("chart"):
		return command{kind: "chart", n: chartWeeks}
	case flags.Changed("gc"):
		return command{kind: "gc", n: gcWeeks}
	case flags.Changed("cg"):
		return command{kind: "gc", n: cgWeeks}
	case flags.Changed("edit"):
		return command{kind: "edit", date: editDate}
	case demoFlag:
		return command{kind: "demo"}
	default:
		return command{kind: "status"}
	}
}

func run(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		fmt.Fprintf(os.Stderr, "Please go to %s\nand compare to the following:\n%s\n",
			config.Path(), config.DefaultINI)
		return err
	}

	util.InitLogger(logLevel, cfg.AppLogPath(), debug)
	util.LogDebugf("config: records=%s target=%dh/%dd break=%dm include_break=%v",
		cfg.RecordsFolder, cfg.TargetHours, cfg.TargetDays, cfg.DefaultBreak, cfg.IncludeBreak)

	repo := store.NewFileRepository(cfg.TimecardPath())
	cards, err := repo.Load()
	if err != nil {
		return err
	}
	journal := timelog.NewJournal(cfg.TimelogPath())
	records, err := journal.ReadAll()
	if err != nil {
		return err
	}

	clock := util.SystemClock{}
	engine := timeclock.NewEngine(cards, repo, journal, clock)
	if cards.Ensure(engine.Today()) {
		if err := repo.Save(cards); err != nil {
			return err
		}
	}

	painter := render.NewPainter(cfg.ColorOrder)
	s := &session{
		cfg:     cfg,
		engine:  engine,
		painter: painter,
		records: records,
		renderer: &render.Renderer{
			Cards:       cards,
			Records:     records,
			Painter:     painter,
			Clock:       clock,
			TargetHours: cfg.TargetHours,
			TargetDays:  cfg.TargetDays,
			Out:         os.Stdout,
		},
	}
	return s.dispatch(decodeCommand(cmd.Flags()))
}

func Execute() error {
	return rootCmd.Execute()
}

// session holds everything one invocation needs after bootstrap.
type session struct {
	cfg      *config.Config
	engine   *timeclock.Engine
	renderer *render.Renderer
	painter  *render.Painter
	records  []timelog.Record
}

func (s *session) dispatch(c command) error {
	util.LogDebugf("dispatching %q (n=%d date=%q)", c.kind, c.n, c.date)
	switch c.kind {
	case "in":
		return s.clockIn()
	case "out":
		return s.clockOut()
	case "toggle":
		return s.toggle()
	case "break":
		return s.takeBreak(c.n)
	case "log":
		s.renderer.LogListing(c.n)
		return nil
	case "sum":
		s.renderer.SummaryTable(c.n)
		return nil
	case "graph":
		s.renderer.Plot(c.n, true, false)
		return nil
	case "chart":
		s.renderer.Plot(c.n, false, true)
		return nil
	case "gc":
		s.renderer.Plot(c.n, true, true)
		return nil
	case "edit":
		return s.edit(c.date)
	case "demo":
		demo := &render.Demo{Renderer: s.renderer, In: os.Stdin}
		demo.Run()
		return nil
	default:
		s.renderer.CheckPunch()
		return nil
	}
}

// warn prints a precondition message with the last journal entry for
// context. Precondition violations are not errors: nothing changed and
// the exit code stays zero.
func (s *session) warn(msg string) {
	fmt.Println(s.painter.Paint("\n"+msg, "light_red"))
	fmt.Println("Last entry: " + timelog.LastStamp(s.records))
}

func (s *session) announceIn(res timeclock.PunchResult) {
	fmt.Println(s.painter.Paint("\n["+res.Time+"] You are now clocked in.", "light_cyan"))
	if res.FirstPunch {
		s.renderer.FirstPunchBanner(s.cfg.IncludeBreak, s.cfg.DefaultBreak)
	}
}

func (s *session) announceOut(res timeclock.PunchResult) {
	fmt.Println(s.painter.Paint("\n["+res.Time+"] You are now clocked out.", "light_yellow"))
	fmt.Println("You were clocked in for " + timeclock.FormatLogHours(res.Elapsed) + " hours.")
}

func (s *session) clockIn() error {
	res, err := s.engine.ClockIn()
	if errors.Is(err, timeclock.ErrAlreadyClockedIn) {
		s.warn("You are already clocked in.")
		return nil
	}
	if err != nil {
		return err
	}
	s.announceIn(res)
	return nil
}

func (s *session) clockOut() error {
	res, err := s.engine.ClockOut()
	if errors.Is(err, timeclock.ErrNotClockedIn) {
		s.warn("You are not clocked in.")
		return nil
	}
	if err != nil {
		return err
	}
	s.announceOut(res)
	return nil
}

func (s *session) toggle() error {
	res, nowIn, err := s.engine.Toggle()
	if err != nil {
		return err
	}
	if nowIn {
		s.announceIn(res)
	} else {
		s.announceOut(res)
	}
	return nil
}

// takeBreak clocks out, counts the break down on screen, and clocks
// back in. Ctrl-C cuts the countdown short; the clock-in still runs.
func (s *session) takeBreak(minutes int) error {
	if minutes <= 0 {
		minutes = s.cfg.DefaultBreak
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	interrupt := make(chan struct{})
	go func() {
		<-sig
		close(interrupt)
	}()

	screen := &render.BreakScreen{
		Renderer:  s.renderer,
		Interrupt: interrupt,
		Debug:     debug,
	}
	res, err := s.engine.TakeBreak(minutes,
		func(out timeclock.PunchResult) { s.announceOut(out) },
		func(m int) { screen.Wait(m) })
	if errors.Is(err, timeclock.ErrNotClockedIn) {
		fmt.Println("\nYou are not clocked in.")
		fmt.Println("Last entry: " + timelog.LastStamp(s.records))
		return nil
	}
	if err != nil {
		return err
	}
	s.announceIn(res)
	return nil
}

// edit prompts for the new hour value and overwrites the date's total.
// Bad input aborts with a message but is not an error.
func (s *session) edit(date string) error {
	if date == noDate {
		fmt.Println("No date given.")
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		fmt.Printf("Not a valid date: '%s'.\n", date)
		return nil
	}

	fmt.Print("Enter hours for " + date + " : ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		fmt.Println()
		return nil
	}
	hours, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		fmt.Printf("'%s' is not a number.\n", strings.TrimSpace(line))
		return nil
	}

	res, err := s.engine.EditEntry(date, hours)
	if err != nil {
		return err
	}
	if res.ForcedOut {
		fmt.Println(s.painter.Paint("You were clocked out in order to edit today's entry.", "light_yellow"))
	}
	fmt.Println("Edited[" + date + "]    " +
		timeclock.FormatLogHours(res.Old) + " -> " + timeclock.FormatLogHours(res.New))
	if date == s.engine.Today() {
		fmt.Println(s.painter.Paint("\nToday's entry has been modified. Clock in to continue logging time for today\n", "light_magenta"))
	}
	return nil
}
