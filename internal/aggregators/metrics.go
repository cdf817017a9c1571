package aggregators

import (
	"loghours/internal/shared/metrics"
)

// metricHourBucketCreatedTotal counts hour buckets created during the run.
//
// It is incremented the first time any client IP is recorded for a
// given (domain, hour bucket) pair, not on subsequent hits into the
// same bucket. The bucket_id label identifies the hour of day:
// "hour-XX" where XX is 00-23, e.g. a hit at 2023-10-10 13:55 creates
// bucket_id="hour-13" if no earlier hit fell into that domain's 13:00
// bucket.
//
// metricHitsRecordedTotal counts every recorded hit, so the ratio of
// the two shows how concentrated traffic is within buckets.
var (
	metricHourBucketCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "hour_bucket_created_total",
		},
		[]string{"bucket_id"},
	)

	metricHitsRecordedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "hits_recorded_total",
		},
	)
)
