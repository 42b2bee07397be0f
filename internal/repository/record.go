package repository

import (
	"fmt"
	"time"

	"todo-tracker/internal/domain"
)

const (
	// DateLayout is the local timestamp written for every task.
	DateLayout = "2006-01-02T15:04:05"
	// LegacyDateLayout is accepted on read for files written before tasks had times.
	LegacyDateLayout = "2006-01-02"
)

// Record is the persisted shape of a task. Optional fields are omitted when empty.
type Record struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Date        string        `json:"date"`
	Repeats     domain.Repeat `json:"repeats"`
	Description *string       `json:"description,omitempty"`
	URL         *string       `json:"url,omitempty"`
	Group       *string       `json:"group,omitempty"`
	Complete    bool          `json:"complete"`
}

// ToRecord converts a task for storage.
func ToRecord(t domain.Task) Record {
	return Record{
		ID:          t.ID,
		Name:        t.Name,
		Date:        FormatDate(t.Date),
		Repeats:     t.Repeats,
		Description: optional(t.Description),
		URL:         optional(t.URL),
		Group:       optional(t.Group),
		Complete:    t.Complete,
	}
}

// ToRecords converts a slice of tasks, keeping order.
func ToRecords(tasks []domain.Task) []Record {
	records := make([]Record, len(tasks))
	for i, t := range tasks {
		records[i] = ToRecord(t)
	}
	return records
}

// Task converts a record back into a task.
func (r Record) Task() (domain.Task, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: %w", r.ID, err)
	}
	repeats := r.Repeats
	if repeats.Kind == "" {
		repeats = domain.Never()
	}
	return domain.Task{
		ID:          r.ID,
		Name:        r.Name,
		Date:        date,
		Repeats:     repeats,
		Description: deref(r.Description),
		URL:         deref(r.URL),
		Group:       deref(r.Group),
		Complete:    r.Complete,
	}, nil
}

// FormatDate renders t in local time with DateLayout.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// ParseDate reads DateLayout, then RFC 3339, then LegacyDateLayout. A legacy
// date-only value becomes 23:59:59 that day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), nil
	}
	if t, err := time.ParseInLocation(LegacyDateLayout, s, time.Local); err == nil {
		return domain.EndOfDay(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
