package domain

import "time"

// NextOccurrence returns the due time of the task that follows a task due at
// current under rule r. The second result is false when r never recurs.
// Month based rules clamp the day to the end of a shorter target month.
func NextOccurrence(current time.Time, r Repeat) (time.Time, bool) {
	switch r.Kind {
	case RepeatDaily:
		return current.AddDate(0, 0, 1), true
	case RepeatWeekly:
		return current.AddDate(0, 0, 7), true
	case RepeatMonthly:
		return addMonthsClamped(current, 1), true
	case RepeatYearly:
		return addMonthsClamped(current, 12), true
	case RepeatDaysOfWeek:
		for i := 1; i <= 7; i++ {
			next := current.AddDate(0, 0, i)
			if r.Contains(FromWeekday(next.Weekday())) {
				return next, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
