package timecalc

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedTimestamp is returned when a stored entry date cannot be parsed.
var ErrMalformedTimestamp = errors.New("malformed date string")

// DateLayout is the day format accepted on the command line.
const DateLayout = "2006-01-02"

// parseLayouts are tried in order by ParseTimestamp. Fractional seconds after
// the seconds field are accepted by time.Parse without being in the layout.
var parseLayouts = []string{
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05 -07:00",
	time.RFC3339,
}

// FormatTimestamp renders t the way entry dates are persisted, for example
// "2020-10-11 22:09:24.269707 +02:00". Fractional seconds are omitted when
// zero and otherwise printed with 3, 6 or 9 digits, whichever is exact.
func FormatTimestamp(t time.Time) string {
	layout := "2006-01-02 15:04:05"
	switch ns := t.Nanosecond(); {
	case ns == 0:
	case ns%1_000_000 == 0:
		layout += ".000"
	case ns%1_000 == 0:
		layout += ".000000"
	default:
		layout += ".000000000"
	}
	return t.Format(layout + " -07:00")
}

// ParseTimestamp parses a persisted entry date. It also accepts RFC 3339.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
}

// ParseDate parses a YYYY-MM-DD day in loc and returns its midnight.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ParseMonth parses a month reference given as YYYY-MM or YYYY-MM-DD in loc.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01", s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM or YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// SameMonth reports whether a and b fall in the same calendar month. Unless
// matchYear is set only the month number is compared, so October 2019 and
// October 2020 match.
func SameMonth(a, b time.Time, matchYear bool) bool {
	if a.Month() != b.Month() {
		return false
	}
	return !matchYear || a.Year() == b.Year()
}

// MonthLabel returns a label like "October 2020".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
