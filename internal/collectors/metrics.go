package collectors

import (
	"loghours/internal/shared/metrics"
)

// Per-run collection counters. The variant label distinguishes the
// four naming conventions a domain's logs can use: plain, secure, and
// the gzip monthly archive of each.
var (
	metricLogFilesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollection,
			Name:      "log_files_processed_total",
		},
		[]string{"variant"},
	)

	metricLogFilesMissingTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollection,
			Name:      "log_files_missing_total",
		},
		[]string{"variant"},
	)

	metricLogLinesScannedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollection,
			Name:      "log_lines_scanned_total",
		},
	)

	// Lines that matched the grammar and fell inside the date window.
	metricLogLinesMatchedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollection,
			Name:      "log_lines_matched_total",
		},
	)

	// Lines that matched the grammar but carried an unparseable timestamp.
	metricLogLinesBadTimestampTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollection,
			Name:      "log_lines_bad_timestamp_total",
		},
	)
)
