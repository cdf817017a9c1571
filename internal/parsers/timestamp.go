package parsers

import (
	"fmt"
	"strings"
	"time"

	"loghours/internal/models"
)

// accessTimeLayout covers the timestamp up to the zone offset, e.g.
// "10/Oct/2023:13:55:36". Go's time package uses a fixed English month
// table, so parsing is locale-independent.
const accessTimeLayout = "02/Jan/2006:15:04:05"

// hourBucketLayout is the aggregation key: the timestamp truncated to
// the top of its hour in its own encoded local time.
const hourBucketLayout = "2006-01-02 15:00"

func (p *accessLogParser) NormalizeTimestamp(raw string) (models.ParsedTime, error) {
	// Drop the zone offset: "10/Oct/2023:13:55:36 +0000" -> first token.
	clock := raw
	if i := strings.IndexAny(clock, " \t"); i >= 0 {
		clock = clock[:i]
	}

	t, err := time.Parse(accessTimeLayout, clock)
	if err != nil {
		return models.ParsedTime{}, fmt.Errorf("malformed access-log timestamp %q: %w", raw, err)
	}

	return models.ParsedTime{
		Date:       models.DateOf(t),
		HourBucket: t.Format(hourBucketLayout),
	}, nil
}
