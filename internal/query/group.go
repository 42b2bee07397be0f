package query

import (
	"time"

	"todo-tracker/internal/domain"
)

// DayGroup is a run of tasks due on the same calendar day.
type DayGroup struct {
	Day   time.Time
	Tasks []domain.Task
}

// GroupByDay splits date-sorted tasks into contiguous same-day runs. The input
// must already be sorted; a day that appears twice non-contiguously yields two
// groups.
func GroupByDay(sorted []domain.Task) []DayGroup {
	var groups []DayGroup
	for _, t := range sorted {
		n := len(groups)
		if n > 0 && domain.SameDay(groups[n-1].Day, t.Date) {
			groups[n-1].Tasks = append(groups[n-1].Tasks, t)
			continue
		}
		y, m, d := t.Date.Local().Date()
		groups = append(groups, DayGroup{
			Day:   time.Date(y, m, d, 0, 0, 0, 0, time.Local),
			Tasks: []domain.Task{t},
		})
	}
	return groups
}

// Options combines the filters used by the list views.
type Options struct {
	ShowComplete bool
	DateFilter   DateFilter
	// ExactDate is ignored when zero.
	ExactDate time.Time
	Group     string
}

// Apply runs every filter in opts and returns the result sorted by date.
func Apply(tasks []domain.Task, opts Options, now time.Time) []domain.Task {
	out := ByCompletion(tasks, opts.ShowComplete)
	out = ByRelativeDate(out, opts.DateFilter, now)
	if !opts.ExactDate.IsZero() {
		out = ByExactDate(out, opts.ExactDate)
	}
	out = ByGroup(out, opts.Group)
	SortByDate(out)
	return out
}
