package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWindow_ContainsInclusiveBoundaries(t *testing.T) {
	t.Parallel()

	window := DateWindow{
		Start: Date{Year: 2023, Month: time.October, Day: 10},
		End:   Date{Year: 2023, Month: time.October, Day: 12},
	}

	assert.True(t, window.Contains(Date{2023, time.October, 10}), "start date counts")
	assert.True(t, window.Contains(Date{2023, time.October, 11}))
	assert.True(t, window.Contains(Date{2023, time.October, 12}), "end date counts")
	assert.False(t, window.Contains(Date{2023, time.October, 9}))
	assert.False(t, window.Contains(Date{2023, time.October, 13}))
}

func TestDateWindow_InvertedContainsNothing(t *testing.T) {
	t.Parallel()

	window := DateWindow{
		Start: Date{Year: 2023, Month: time.October, Day: 12},
		End:   Date{Year: 2023, Month: time.October, Day: 10},
	}

	for day := 9; day <= 13; day++ {
		assert.False(t, window.Contains(Date{2023, time.October, day}))
	}
}

func TestNewTrailingDayWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2023, time.October, 10, 23, 59, 0, 0, time.UTC)
	window := NewTrailingDayWindow(now)

	assert.Equal(t, Date{2023, time.October, 9}, window.Start)
	assert.Equal(t, Date{2023, time.October, 10}, window.End)
}

func TestNewTrailingDayWindow_AcrossMonthBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	window := NewTrailingDayWindow(now)

	assert.Equal(t, Date{2024, time.February, 29}, window.Start, "2024 is a leap year")
	assert.Equal(t, Date{2024, time.March, 1}, window.End)
}

func TestParseDateWindow(t *testing.T) {
	t.Parallel()

	window, err := ParseDateWindow("01/10/2023-15/10/2023")
	require.NoError(t, err)

	assert.Equal(t, Date{2023, time.October, 1}, window.Start)
	assert.Equal(t, Date{2023, time.October, 15}, window.End)
}

func TestParseDateWindow_Malformed(t *testing.T) {
	t.Parallel()

	malformed := []string{
		"",
		"01/10/2023",            // missing separator and end date
		"2023-10-01-2023-10-15", // ISO order not accepted
		"01/10/2023-xx/10/2023",
		"32/10/2023-15/10/2023",
	}

	for _, s := range malformed {
		_, err := ParseDateWindow(s)
		assert.Error(t, err, "range %q must not parse", s)
	}
}

func TestDate_Before(t *testing.T) {
	t.Parallel()

	assert.True(t, Date{2023, time.September, 30}.Before(Date{2023, time.October, 1}))
	assert.True(t, Date{2022, time.December, 31}.Before(Date{2023, time.January, 1}))
	assert.False(t, Date{2023, time.October, 10}.Before(Date{2023, time.October, 10}))
	assert.False(t, Date{2023, time.October, 11}.Before(Date{2023, time.October, 10}))
}

func TestDate_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2023-10-09", Date{2023, time.October, 9}.String())
}
