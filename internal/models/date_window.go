package models

import (
	"fmt"
	"strings"
	"time"
)

const dateRangeLayout = "02/01/2006"

// DateWindow is an inclusive [Start, End] calendar-date range. An
// inverted window (Start after End) contains nothing; this is not
// validated, matching the tool's historical behavior.
type DateWindow struct {
	Start Date
	End   Date
}

// Contains reports whether d falls inside the window, boundaries
// included. Only the calendar date is compared.
func (w DateWindow) Contains(d Date) bool {
	return !d.Before(w.Start) && !w.End.Before(d)
}

// NewTrailingDayWindow builds the default window from a single
// captured run instant: End is now's date, Start is exactly one
// calendar day earlier. Callers capture now once at run start so the
// window stays fixed even if the run straddles midnight.
func NewTrailingDayWindow(now time.Time) DateWindow {
	return DateWindow{
		Start: DateOf(now.AddDate(0, 0, -1)),
		End:   DateOf(now),
	}
}

// ParseDateWindow parses a "dd/mm/yyyy-dd/mm/yyyy" range argument.
func ParseDateWindow(s string) (DateWindow, error) {
	startStr, endStr, ok := strings.Cut(s, "-")
	if !ok {
		return DateWindow{}, fmt.Errorf("date range %q must be in format dd/mm/yyyy-dd/mm/yyyy", s)
	}
	start, err := time.Parse(dateRangeLayout, startStr)
	if err != nil {
		return DateWindow{}, fmt.Errorf("invalid start date %q: must be dd/mm/yyyy", startStr)
	}
	end, err := time.Parse(dateRangeLayout, endStr)
	if err != nil {
		return DateWindow{}, fmt.Errorf("invalid end date %q: must be dd/mm/yyyy", endStr)
	}
	return DateWindow{Start: DateOf(start), End: DateOf(end)}, nil
}
