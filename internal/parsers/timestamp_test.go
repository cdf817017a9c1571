package parsers_test

import (
	"testing"
	"time"

	"loghours/internal/models"
	"loghours/internal/parsers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimestamp_DropsZoneOffset(t *testing.T) {
	t.Parallel()

	parser := parsers.NewAccessLogParser()

	parsed, err := parser.NormalizeTimestamp("10/Oct/2023:13:55:36 +0000")
	require.NoError(t, err)

	assert.Equal(t, models.Date{Year: 2023, Month: time.October, Day: 10}, parsed.Date)
	assert.Equal(t, "2023-10-10 13:00", parsed.HourBucket)
}

func TestNormalizeTimestamp_NoOffset(t *testing.T) {
	t.Parallel()

	parser := parsers.NewAccessLogParser()

	parsed, err := parser.NormalizeTimestamp("01/Jan/2024:00:05:59")
	require.NoError(t, err)

	assert.Equal(t, models.Date{Year: 2024, Month: time.January, Day: 1}, parsed.Date)
	assert.Equal(t, "2024-01-01 00:00", parsed.HourBucket)
}

func TestNormalizeTimestamp_TruncatesToTopOfHour(t *testing.T) {
	t.Parallel()

	parser := parsers.NewAccessLogParser()

	early, err := parser.NormalizeTimestamp("10/Oct/2023:13:00:00 +0200")
	require.NoError(t, err)
	late, err := parser.NormalizeTimestamp("10/Oct/2023:13:59:59 +0200")
	require.NoError(t, err)

	assert.Equal(t, early.HourBucket, late.HourBucket,
		"different minutes within one hour must share a bucket")
}

func TestNormalizeTimestamp_Malformed(t *testing.T) {
	t.Parallel()

	parser := parsers.NewAccessLogParser()

	malformed := []string{
		"",
		"not a timestamp",
		"2023-10-10 13:55:36",         // wrong layout
		"10/Okt/2023:13:55:36 +0000",  // non-English month
		"32/Oct/2023:13:55:36 +0000",  // day out of range
		"10/Oct/2023:25:55:36 +0000",  // hour out of range
	}

	for _, raw := range malformed {
		_, err := parser.NormalizeTimestamp(raw)
		assert.Error(t, err, "raw %q must not parse", raw)
	}
}
