package domain

import (
	"fmt"
	"strings"
	"time"
)

// EndOfDay returns 23:59:59 on t's calendar day. Tasks without a specific
// time of day are stored this way.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// Today returns the end of the current local day.
func Today(now time.Time) time.Time {
	return EndOfDay(now.Local())
}

// DateHasTime reports whether t carries a specific time of day rather than
// the 23:59 date-only marker.
func DateHasTime(t time.Time) bool {
	return !(t.Hour() == 23 && t.Minute() == 59)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// DateFormats holds the Go time layouts used to read and show due dates.
type DateFormats struct {
	DisplayDate     string
	DisplayDateTime string
	InputDate       string
	InputDateTime   string
}

// ParseDate reads s with the datetime layout first, then the date layout.
// A date without time becomes 23:59:59 that day, in local time.
func ParseDate(s string, formats DateFormats) (time.Time, error) {
	s = strings.TrimSpace(s)
	if formats.InputDateTime != "" {
		if t, err := time.ParseInLocation(formats.InputDateTime, s, time.Local); err == nil {
			return t, nil
		}
	}
	if formats.InputDate != "" {
		if t, err := time.ParseInLocation(formats.InputDate, s, time.Local); err == nil {
			return EndOfDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q", s)
}

// FormatDisplay formats t for listing, omitting the time for date-only tasks.
func FormatDisplay(t time.Time, formats DateFormats) string {
	if DateHasTime(t) {
		return t.Format(formats.DisplayDateTime)
	}
	return t.Format(formats.DisplayDate)
}

// FormatInput formats t so that ParseDate reads it back.
func FormatInput(t time.Time, formats DateFormats) string {
	if DateHasTime(t) {
		return t.Format(formats.InputDateTime)
	}
	return t.Format(formats.InputDate)
}
