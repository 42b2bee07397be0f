package migrations

import (
	"database/sql"
	"fmt"
	"time"

	"todo-tracker/internal/logging"
)

func init() {
	RegisterGoMigration(3, Up_000003_normalize_task_dates, Down_000003_normalize_task_dates)
}

// Up_000003_normalize_task_dates rewrites task dates to RFC 3339. It handles:
// - date-only values from older task files (moved to 23:59:59 local)
// - local timestamps without an offset
// - values that are already RFC 3339
func Up_000003_normalize_task_dates(tx *sql.Tx) error {
	type row struct {
		id   int64
		date string
	}
	var rowsToFix []row

	rows, err := tx.Query("SELECT id, date FROM tasks")
	if err != nil {
		return fmt.Errorf("failed to query tasks: %w", err)
	}
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.date); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan task row: %w", err)
		}
		rowsToFix = append(rowsToFix, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating tasks: %w", err)
	}
	rows.Close()

	stmt, err := tx.Prepare("UPDATE tasks SET date = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare date update statement: %w", err)
	}
	defer stmt.Close()

	updates := 0
	for _, r := range rowsToFix {
		normalized, err := normalizeDate(r.date)
		if err != nil {
			return fmt.Errorf("task %d: %w", r.id, err)
		}
		if normalized == r.date {
			continue
		}
		if _, err := stmt.Exec(normalized, r.id); err != nil {
			return fmt.Errorf("failed to update date for task %d: %w", r.id, err)
		}
		updates++
	}

	logging.Debugf("normalized %d of %d task dates", updates, len(rowsToFix))
	return nil
}

// Down_000003_normalize_task_dates strips the offset, leaving local timestamps.
func Down_000003_normalize_task_dates(tx *sql.Tx) error {
	_, err := tx.Exec(`
		UPDATE tasks
		SET date = substr(date, 1, 19)
		WHERE date GLOB '????-??-??T??:??:??*'
	`)
	if err != nil {
		return fmt.Errorf("failed to revert task dates: %w", err)
	}
	return nil
}

func normalizeDate(s string) (string, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(time.RFC3339), nil
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format(time.RFC3339), nil
		}
	}

	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 23, 59, 59, 0, time.Local).Format(time.RFC3339), nil
	}

	return "", fmt.Errorf("could not parse date %q", s)
}
