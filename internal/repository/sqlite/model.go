package sqlite

import (
	"database/sql"
	"fmt"

	"todo-tracker/internal/domain"
)

// taskRow mirrors one row of the tasks table
type taskRow struct {
	ID          int64
	Name        string
	Date        string
	Repeats     string
	Description sql.NullString
	URL         sql.NullString
	Group       sql.NullString
	Complete    bool
	Position    int
}

func rowFromTask(t domain.Task, position int) taskRow {
	return taskRow{
		ID:          t.ID,
		Name:        t.Name,
		Date:        FormatTimeForDB(t.Date),
		Repeats:     t.Repeats.String(),
		Description: NullString(t.Description),
		URL:         NullString(t.URL),
		Group:       NullString(t.Group),
		Complete:    t.Complete,
		Position:    position,
	}
}

func (r taskRow) task() (domain.Task, error) {
	date, err := ParseTimeFromDB(r.Date)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: %w", r.ID, err)
	}
	repeats, err := domain.ParseRepeat(r.Repeats)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: %w", r.ID, err)
	}
	return domain.Task{
		ID:          r.ID,
		Name:        r.Name,
		Date:        date,
		Repeats:     repeats,
		Description: r.Description.String,
		URL:         r.URL.String,
		Group:       r.Group.String,
		Complete:    r.Complete,
	}, nil
}
