package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Task is a single to-do item.
// ID is zero until the task store assigns one; empty Description, URL and
// Group mean the field is unset.
type Task struct {
	ID          int64
	Name        string
	Date        time.Time
	Repeats     Repeat
	Description string
	URL         string
	Group       string
	Complete    bool
}

// NewTask creates an incomplete, non-repeating task due at the end of today.
func NewTask(name string, now time.Time) Task {
	return Task{
		Name:    name,
		Date:    Today(now),
		Repeats: Never(),
	}
}

// HasID reports whether the task has been stored.
func (t Task) HasID() bool {
	return t.ID > 0
}

// HasGroup reports whether the task belongs to a group.
func (t Task) HasGroup() bool {
	return t.Group != ""
}

// MarkComplete marks the task complete. When its repeat rule yields another
// occurrence the successor is returned with ok set: a copy with no ID, the
// next due date and Complete cleared. Storing it is up to the caller.
func (t *Task) MarkComplete() (successor Task, ok bool) {
	t.Complete = true

	next, ok := NextOccurrence(t.Date, t.Repeats)
	if !ok {
		return Task{}, false
	}

	successor = t.Clone()
	successor.ID = 0
	successor.Date = next
	successor.Complete = false
	return successor, true
}

// MarkIncomplete clears the complete flag.
func (t *Task) MarkIncomplete() {
	t.Complete = false
}

// Toggle flips the completion state, returning a successor exactly like
// MarkComplete when the task becomes complete.
func (t *Task) Toggle() (Task, bool) {
	if t.Complete {
		t.MarkIncomplete()
		return Task{}, false
	}
	return t.MarkComplete()
}

// Clone returns a deep copy.
func (t Task) Clone() Task {
	c := t
	if t.Repeats.Days != nil {
		c.Repeats.Days = append([]DayOfWeek(nil), t.Repeats.Days...)
	}
	return c
}

var linkPattern = regexp.MustCompile(`https?://[^\s]+`)

// Link returns the task URL, falling back to the first link in the description.
func (t Task) Link() string {
	if t.URL != "" {
		return t.URL
	}
	return linkPattern.FindString(t.Description)
}

// HasLink reports whether Link would return anything.
func (t Task) HasLink() bool {
	return t.Link() != ""
}

// String returns a compact one line summary.
func (t Task) String() string {
	mark := "[ ]"
	if t.Complete {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s\t%s\t%s", mark, t.Name, t.Date.Format("2006-01-02 15:04"), t.Repeats)
}
