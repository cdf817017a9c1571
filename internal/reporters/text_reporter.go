package reporters

import (
	"fmt"
	"io"
	"sort"

	"loghours/internal/models"
)

type Reporter interface {
	// Render writes the human-readable report. Domains appear in map
	// order; hour buckets within a domain in ascending lexicographic
	// order, which for the fixed bucket format is chronological.
	Render(w io.Writer, report *models.TrafficReport)
}

type textReporter struct {
	bold bool
}

// NewTextReporter creates the terminal reporter. With bold set, domain
// headings are emphasized with ANSI codes; callers pass false when
// stdout is not a terminal.
func NewTextReporter(bold bool) Reporter {
	return &textReporter{bold: bold}
}

func (r *textReporter) Render(w io.Writer, report *models.TrafficReport) {
	for domain, hours := range report.Domains {
		if r.bold {
			fmt.Fprintf(w, "\n\x1b[1mDomain: %s\x1b[0m\n", domain)
		} else {
			fmt.Fprintf(w, "\nDomain: %s\n", domain)
		}

		hourKeys := make([]string, 0, len(hours))
		for hour := range hours {
			hourKeys = append(hourKeys, hour)
		}
		sort.Strings(hourKeys)

		for _, hour := range hourKeys {
			fmt.Fprintf(w, "  Hour: %s\n", hour)
			for ip, count := range hours[hour] {
				fmt.Fprintf(w, "    IP: %s - %d requests\n", ip, count)
			}
		}
	}
}
