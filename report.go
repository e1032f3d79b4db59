package tablemark

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Reporter writes measurement results to an output stream.
type Reporter struct {
	output io.Writer
}

// NewReporter creates a reporter writing to output.
func NewReporter(output io.Writer) *Reporter {
	return &Reporter{output: output}
}

// ReportText writes one row per case plus a trailing summary.
func (r *Reporter) ReportText(results []Result) {
	fmt.Fprintf(r.output, "\n=== tablemark: userdata vs table workloads ===\n\n")

	width := 0
	for _, res := range results {
		if len(res.Case) > width {
			width = len(res.Case)
		}
	}

	for _, res := range results {
		fmt.Fprintf(r.output, "%-*s  reps=%-7d avg=%-10s min=%-10s max=%-10s %s items/s\n",
			width, res.Case,
			res.Reps,
			formatDuration(res.AvgTime),
			formatDuration(res.MinTime),
			formatDuration(res.MaxTime),
			humanize.Comma(int64(res.ItemsPerSec)))
	}

	total := 0
	for _, res := range results {
		total += res.Reps
	}
	fmt.Fprintf(r.output, "\n--- Summary ---\n")
	fmt.Fprintf(r.output, "Cases: %d  Repetitions: %s\n\n",
		len(results), humanize.Comma(int64(total)))
}

// ReportJSON writes the results as an indented JSON array.
func (r *Reporter) ReportJSON(results []Result) error {
	enc := json.NewEncoder(r.output)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000.0)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1000000.0)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
