// Package query filters, sorts and groups task snapshots. Every function is
// pure and takes the current time as a parameter.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"todo-tracker/internal/domain"
)

// DateFilter selects tasks relative to the current time.
type DateFilter int

const (
	All DateFilter = iota
	Today
	Past
	TodayAndPast
	Next24Hours
)

var dateFilterNames = map[DateFilter]string{
	All:          "all",
	Today:        "today",
	Past:         "past",
	TodayAndPast: "today-and-past",
	Next24Hours:  "next-24h",
}

func (f DateFilter) String() string {
	if s, ok := dateFilterNames[f]; ok {
		return s
	}
	return fmt.Sprintf("DateFilter(%d)", int(f))
}

// ParseDateFilter accepts the names printed by DateFilter.String, in any case.
// An empty string is All.
func ParseDateFilter(s string) (DateFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return All, nil
	}
	for f, name := range dateFilterNames {
		if name == s {
			return f, nil
		}
	}
	return All, fmt.Errorf("unknown date filter %q, expected one of all, today, past, today-and-past, next-24h", s)
}

func keep(tasks []domain.Task, pred func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByCompletion drops complete tasks unless showComplete is set.
func ByCompletion(tasks []domain.Task, showComplete bool) []domain.Task {
	if showComplete {
		return keep(tasks, func(domain.Task) bool { return true })
	}
	return keep(tasks, func(t domain.Task) bool { return !t.Complete })
}

// ByRelativeDate applies mode against now. Day comparisons use the local
// calendar day.
func ByRelativeDate(tasks []domain.Task, mode DateFilter, now time.Time) []domain.Task {
	switch mode {
	case Today:
		return keep(tasks, func(t domain.Task) bool { return domain.SameDay(t.Date, now) })
	case Past:
		return keep(tasks, func(t domain.Task) bool { return t.Date.Before(now) })
	case TodayAndPast:
		end := domain.EndOfDay(now.Local())
		return keep(tasks, func(t domain.Task) bool { return !t.Date.After(end) })
	case Next24Hours:
		until := now.Add(24 * time.Hour)
		return keep(tasks, func(t domain.Task) bool { return !t.Date.Before(now) && t.Date.Before(until) })
	default:
		return keep(tasks, func(domain.Task) bool { return true })
	}
}

// ByExactDate keeps tasks due on day's calendar day.
func ByExactDate(tasks []domain.Task, day time.Time) []domain.Task {
	return keep(tasks, func(t domain.Task) bool { return domain.SameDay(t.Date, day) })
}

// ByGroup keeps tasks whose group equals group ignoring case. Ungrouped tasks
// never match; an empty group disables the filter.
func ByGroup(tasks []domain.Task, group string) []domain.Task {
	group = strings.TrimSpace(group)
	if group == "" {
		return keep(tasks, func(domain.Task) bool { return true })
	}
	return keep(tasks, func(t domain.Task) bool {
		return t.HasGroup() && strings.EqualFold(t.Group, group)
	})
}

// SortByDate sorts in place by due date, then id.
func SortByDate(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].Date.Equal(tasks[j].Date) {
			return tasks[i].Date.Before(tasks[j].Date)
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// Groups returns the distinct group labels, sorted ignoring case. Labels that
// differ only in case are reported once, using the first spelling seen.
func Groups(tasks []domain.Task) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, t := range tasks {
		if !t.HasGroup() {
			continue
		}
		k := strings.ToLower(t.Group)
		if seen[k] {
			continue
		}
		seen[k] = true
		groups = append(groups, t.Group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i]) < strings.ToLower(groups[j])
	})
	return groups
}
