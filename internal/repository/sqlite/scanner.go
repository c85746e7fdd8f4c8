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

// scanTaskRow scans a single task row
func scanTaskRow(scanner Scanner) (taskRow, error) {
	var row taskRow
	err := scanner.Scan(
		&row.ID,
		&row.Position,
		&row.Description,
		&row.Status,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}

// scanTaskRows scans every remaining row
func scanTaskRows(rows Rows) ([]taskRow, error) {
	var out []taskRow
	for rows.Next() {
		row, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
