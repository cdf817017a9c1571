package models

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component. Two entries
// logged in different hours of the same day compare equal.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParsedTime is the normalized form of an access-log timestamp: the
// calendar date for range filtering and the hour bucket for
// aggregation.
type ParsedTime struct {
	Date       Date
	HourBucket string // "2006-01-02 15:00", top of the hour
}
