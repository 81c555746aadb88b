// Package timelog maintains the append-only audit trail of punch events.
// The file format is line-oriented with three fixed-width 24-character
// columns: a bracketed timestamp, the event name, and an optional detail.
// Lines are only ever appended, never rewritten.
package timelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	EventClockIn  = "Clocked In"
	EventClockOut = "Clocked Out"

	colWidth = 24
)

// EditEvent returns the event name recorded when a date's hours are
// overwritten by hand, e.g. "Edited[2024-01-01]".
func EditEvent(date string) string {
	return "Edited[" + date + "]"
}

// Record is one line of the timelog.
type Record struct {
	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Event  string
	Detail string
	Raw    string // original line as read from disk, without newline
}

// IsEdit reports whether the record is an edit event (for any date).
func (r Record) IsEdit() bool {
	return strings.HasPrefix(r.Event, "Edited[")
}

// Line renders the record in the fixed-width wire format.
func (r Record) Line() string {
	var b strings.Builder
	b.WriteString(pad("[" + r.Date + " " + r.Time + "]"))
	b.WriteString(pad(r.Event))
	b.WriteString(pad(r.Detail))
	return b.String()
}

// Stamp is the short form shown as "Last entry": timestamp and event
// columns only, trailing padding trimmed.
func (r Record) Stamp() string {
	line := r.Raw
	if line == "" {
		line = r.Line()
	}
	if len(line) > 2*colWidth {
		line = line[:2*colWidth]
	}
	return strings.TrimRight(line, " ")
}

func pad(s string) string {
	if len(s) < colWidth {
		return s + strings.Repeat(" ", colWidth-len(s))
	}
	return s
}

// ParseLine decodes one timelog line. Returns false for blank or
// malformed lines; callers skip those rather than failing the read.
func ParseLine(line string) (Record, bool) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 19 || line[0] != '[' {
		return Record{}, false
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return Record{}, false
	}
	stamp := line[1:end]
	parts := strings.SplitN(stamp, " ", 2)
	if len(parts) != 2 {
		return Record{}, false
	}

	rec := Record{Date: parts[0], Time: parts[1], Raw: line}
	if len(line) > colWidth {
		rest := line[colWidth:]
		if len(rest) > colWidth {
			rec.Event = strings.TrimRight(rest[:colWidth], " ")
			rec.Detail = strings.TrimRight(rest[colWidth:], " ")
		} else {
			rec.Event = strings.TrimRight(rest, " ")
		}
	}
	return rec, true
}

// Journal is the file-backed timelog.
type Journal struct {
	path string
}

func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// Append writes one record to the end of the log. O_APPEND keeps
// concurrent invocations from interleaving partial lines.
func (j *Journal) Append(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return fmt.Errorf("create timelog directory: %w", err)
	}
	file, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open timelog: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(rec.Line() + "\n"); err != nil {
		return fmt.Errorf("append timelog: %w", err)
	}
	return nil
}

// ReadAll loads every record in the log. A missing file is an empty log.
func (j *Journal) ReadAll() ([]Record, error) {
	content, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read timelog: %w", err)
	}

	var records []Record
	for _, line := range strings.Split(string(content), "\n") {
		if rec, ok := ParseLine(line); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// LastStamp returns the "Last entry" context line for warnings, or a
// placeholder when the log is empty.
func LastStamp(records []Record) string {
	if len(records) == 0 {
		return "No log found..."
	}
	return records[len(records)-1].Stamp()
}
