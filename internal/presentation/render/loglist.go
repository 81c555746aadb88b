package render

import (
	"fmt"
	"time"
)

// LogListing prints journal lines recorded within the last daysAgo
// days, oldest first, under a fixed column header.
func (r *Renderer) LogListing(daysAgo int) {
	cutoff, err := time.Parse("2006-01-02", r.today())
	if err != nil {
		return
	}
	cutoff = cutoff.AddDate(0, 0, -daysAgo)

	fmt.Fprintln(r.Out, "\nTimestamp               Event                   Duration                ")
	fmt.Fprintln(r.Out, "------------------------------------------------------------------------")
	for _, rec := range r.Records {
		day, err := time.Parse("2006-01-02", rec.Date)
		if err != nil || day.Before(cutoff) {
			continue
		}
		line := rec.Raw
		if line == "" {
			line = rec.Line()
		}
		fmt.Fprintln(r.Out, line)
	}
}
