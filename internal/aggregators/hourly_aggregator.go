package aggregators

import (
	"loghours/internal/models"
)

//go:generate mockgen -source=hourly_aggregator.go -destination=./mocks/hourly_aggregator_mock.go -package=mocks
type HourlyAggregator interface {
	// Record counts one request from clientIP under the given domain
	// and hour bucket, creating intermediate levels on first use.
	// Counts only ever grow; nothing decrements or removes them.
	Record(domainName, hourBucket, clientIP string)

	// Snapshot returns the table accumulated so far. The aggregator
	// retains ownership; callers must not mutate it.
	Snapshot() map[string]models.HourlyHits
}

type hourlyAggregator struct {
	hits map[string]models.HourlyHits
}

// NewHourlyAggregator creates an empty aggregator. It is the sole
// owner of its table for the lifetime of one run and is not safe for
// concurrent use.
func NewHourlyAggregator() HourlyAggregator {
	return &hourlyAggregator{hits: make(map[string]models.HourlyHits)}
}

func (a *hourlyAggregator) Record(domainName, hourBucket, clientIP string) {
	domain, ok := a.hits[domainName]
	if !ok {
		domain = make(models.HourlyHits)
		a.hits[domainName] = domain
	}
	ips, ok := domain[hourBucket]
	if !ok {
		ips = make(map[string]int64)
		domain[hourBucket] = ips
		metricHourBucketCreatedTotal.WithLabelValues(bucketID(hourBucket)).Inc()
	}
	ips[clientIP]++
	metricHitsRecordedTotal.Inc()
}

func (a *hourlyAggregator) Snapshot() map[string]models.HourlyHits {
	return a.hits
}

// bucketID reduces an hour-bucket key ("2023-10-10 13:00") to its
// hour-of-day metric label ("hour-13").
func bucketID(hourBucket string) string {
	if len(hourBucket) < len("2006-01-02 15:00") {
		return "hour-unknown"
	}
	return "hour-" + hourBucket[11:13]
}
