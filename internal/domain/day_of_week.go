package domain

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek is a weekday used by day-of-week repeat rules.
// Monday is the first day of the week.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayAbbreviations = map[DayOfWeek]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
	Saturday:  "Sat",
	Sunday:    "Sun",
}

// ParseDayOfWeek parses a three letter abbreviation such as "mon" or "Tue".
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon":
		return Monday, nil
	case "tue":
		return Tuesday, nil
	case "wed":
		return Wednesday, nil
	case "thu":
		return Thursday, nil
	case "fri":
		return Friday, nil
	case "sat":
		return Saturday, nil
	case "sun":
		return Sunday, nil
	default:
		return 0, fmt.Errorf("invalid day of the week: %q", s)
	}
}

// FromWeekday converts a time.Weekday.
func FromWeekday(w time.Weekday) DayOfWeek {
	if w == time.Sunday {
		return Sunday
	}
	return DayOfWeek(w)
}

// Weekday converts the day back to a time.Weekday.
func (d DayOfWeek) Weekday() time.Weekday {
	if d == Sunday {
		return time.Sunday
	}
	return time.Weekday(d)
}

// Int returns the ISO day number, Monday=1 through Sunday=7.
func (d DayOfWeek) Int() int {
	return int(d)
}

// IsValid reports whether d is one of the seven days.
func (d DayOfWeek) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the fixed-case abbreviation, "Mon" through "Sun".
func (d DayOfWeek) String() string {
	if s, ok := dayAbbreviations[d]; ok {
		return s
	}
	return fmt.Sprintf("DayOfWeek(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d DayOfWeek) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid day of the week: %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DayOfWeek) UnmarshalText(text []byte) error {
	parsed, err := ParseDayOfWeek(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
