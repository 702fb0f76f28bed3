package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dhima/calorie-tracker/internal/models"
)

const logEntryColumns = `log_entry_id, logged_on, log_entry_type_id, description, calories`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLogEntry(row rowScanner) (models.LogEntry, error) {
	var (
		entry  models.LogEntry
		typeID int
	)
	if err := row.Scan(&entry.ID, &entry.LoggedOn, &typeID, &entry.Description, &entry.Calories); err != nil {
		return models.LogEntry{}, err
	}

	entryType, err := models.FindLogEntryTypeByValue(typeID)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("log entry %d: %w", entry.ID, err)
	}
	entry.Type = entryType
	return entry, nil
}

func (c *MySQLClient) queryLogEntries(ctx context.Context, query string, args ...interface{}) ([]models.LogEntry, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query log entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LogEntry, 0)
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan log entry row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log entries: %w", err)
	}

	return entries, nil
}

// FindAll returns every log entry ordered by id.
func (c *MySQLClient) FindAll(ctx context.Context) ([]models.LogEntry, error) {
	return c.queryLogEntries(ctx,
		`SELECT `+logEntryColumns+` FROM log_entry ORDER BY log_entry_id`)
}

// FindByType returns the log entries of one category.
func (c *MySQLClient) FindByType(ctx context.Context, entryType models.LogEntryType) ([]models.LogEntry, error) {
	return c.queryLogEntries(ctx,
		`SELECT `+logEntryColumns+` FROM log_entry WHERE log_entry_type_id = ? ORDER BY log_entry_id`,
		entryType.Value(),
	)
}

// FindByID returns nil, nil when the entry does not exist.
func (c *MySQLClient) FindByID(ctx context.Context, id int) (*models.LogEntry, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT `+logEntryColumns+` FROM log_entry WHERE log_entry_id = ?`,
		id,
	)

	entry, err := scanLogEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan log entry: %w", err)
	}
	return &entry, nil
}

// Insert writes entry and sets its generated id. It returns nil, nil when
// no row was written.
func (c *MySQLClient) Insert(ctx context.Context, entry *models.LogEntry) (*models.LogEntry, error) {
	if !entry.Type.Valid() {
		return nil, fmt.Errorf("insert log entry: %w: %d", models.ErrUnknownCategory, entry.Type.Value())
	}

	res, err := c.db.ExecContext(ctx,
		`INSERT INTO log_entry (logged_on, log_entry_type_id, description, calories) VALUES (?, ?, ?, ?)`,
		entry.LoggedOn,
		entry.Type.Value(),
		entry.Description,
		entry.Calories,
	)
	if err != nil {
		return nil, fmt.Errorf("insert log entry: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rowsAffected <= 0 {
		return nil, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	entry.ID = int(id)
	return entry, nil
}

// UpdateByID replaces every column of the row keyed by entry.ID.
func (c *MySQLClient) UpdateByID(ctx context.Context, entry models.LogEntry) (bool, error) {
	if !entry.Type.Valid() {
		return false, fmt.Errorf("update log entry: %w: %d", models.ErrUnknownCategory, entry.Type.Value())
	}

	res, err := c.db.ExecContext(ctx,
		`UPDATE log_entry SET logged_on = ?, log_entry_type_id = ?, description = ?, calories = ? WHERE log_entry_id = ?`,
		entry.LoggedOn,
		entry.Type.Value(),
		entry.Description,
		entry.Calories,
		entry.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update log entry: %w", err)
	}

	return affected(res)
}

// DeleteByID removes the row keyed by id.
func (c *MySQLClient) DeleteByID(ctx context.Context, id int) (bool, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM log_entry WHERE log_entry_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete log entry: %w", err)
	}

	return affected(res)
}

// SummarizeDay groups the entries logged on day (YYYY-MM-DD) by category.
func (c *MySQLClient) SummarizeDay(ctx context.Context, day string) ([]models.TypeTotal, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT log_entry_type_id, COUNT(*), COALESCE(SUM(calories), 0)
		 FROM log_entry
		 WHERE logged_on LIKE ?
		 GROUP BY log_entry_type_id
		 ORDER BY log_entry_type_id`,
		day+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("summarize day: %w", err)
	}
	defer rows.Close()

	totals := make([]models.TypeTotal, 0, len(models.LogEntryTypes()))
	for rows.Next() {
		var typeID int
		var total models.TypeTotal
		if err := rows.Scan(&typeID, &total.Entries, &total.Calories); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		entryType, err := models.FindLogEntryTypeByValue(typeID)
		if err != nil {
			return nil, fmt.Errorf("summary row: %w", err)
		}
		total.Type = entryType
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary rows: %w", err)
	}

	return totals, nil
}

func affected(res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
