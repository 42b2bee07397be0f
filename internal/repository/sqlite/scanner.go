package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task row. Columns must be selected in taskColumns order.
func ScanTask(scanner Scanner) (*taskRow, error) {
	row := &taskRow{}
	err := scanner.Scan(
		&row.ID,
		&row.Name,
		&row.Date,
		&row.Repeats,
		&row.Description,
		&row.URL,
		&row.Group,
		&row.Complete,
		&row.Position,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ScanTasks scans multiple task rows
func ScanTasks(rows Rows) ([]*taskRow, error) {
	var tasks []*taskRow
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
