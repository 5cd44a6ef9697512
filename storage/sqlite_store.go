package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"vikarfaktura/shift"
)

// SQLiteStore stages one normalized schedule batch between the upload step
// and the generate step of the web flow. Batches are deleted once the
// invoice is produced; nothing is kept across invoice runs.
type SQLiteStore struct {
	db *sql.DB
}

var ErrBatchNotFound = errors.New("batch not found")

// StagedBatch is a normalized upload waiting for the operator's holiday
// selection and invoice number.
type StagedBatch struct {
	ID                  string
	CreatedAt           time.Time
	RowsRead            int
	VendorRows          int
	ZeroHourRows        int
	UnknownCategoryRows int
	Lines               []shift.Line
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	rows_read INTEGER NOT NULL,
	vendor_rows INTEGER NOT NULL,
	zero_hour_rows INTEGER NOT NULL,
	unknown_category_rows INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS batch_lines (
	batch_id TEXT NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	date TEXT NOT NULL,
	employee TEXT NOT NULL,
	time_range TEXT NOT NULL,
	hours REAL NOT NULL CHECK(hours > 0),
	raw_category TEXT NOT NULL,
	category TEXT NOT NULL,
	bucket TEXT NOT NULL,
	raw_location TEXT NOT NULL,
	PRIMARY KEY (batch_id, position)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveBatch(batch StagedBatch) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO batches (id, rows_read, vendor_rows, zero_hour_rows, unknown_category_rows)
		 VALUES (?, ?, ?, ?, ?)`,
		batch.ID, batch.RowsRead, batch.VendorRows, batch.ZeroHourRows, batch.UnknownCategoryRows,
	)
	if err != nil {
		return fmt.Errorf("insert batch %s: %w", batch.ID, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO batch_lines (batch_id, position, date, employee, time_range, hours, raw_category, category, bucket, raw_location)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare line insert: %w", err)
	}
	defer stmt.Close()

	for position, line := range batch.Lines {
		_, err := stmt.Exec(
			batch.ID,
			position,
			line.Date.Format("2006-01-02"),
			line.Employee,
			line.TimeRange,
			line.Hours,
			line.RawCategory,
			string(line.Category),
			line.Bucket,
			line.RawLocation,
		)
		if err != nil {
			return fmt.Errorf("insert line %d of batch %s: %w", position, batch.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch %s: %w", batch.ID, err)
	}
	return nil
}

func (s *SQLiteStore) LoadBatch(id string) (*StagedBatch, error) {
	batch := &StagedBatch{ID: id}

	var createdAt string
	err := s.db.QueryRow(
		`SELECT created_at, rows_read, vendor_rows, zero_hour_rows, unknown_category_rows FROM batches WHERE id = ?`,
		id,
	).Scan(&createdAt, &batch.RowsRead, &batch.VendorRows, &batch.ZeroHourRows, &batch.UnknownCategoryRows)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load batch %s: %w", id, err)
	}
	if parsed, parseErr := time.Parse("2006-01-02 15:04:05", createdAt); parseErr == nil {
		batch.CreatedAt = parsed
	}

	rows, err := s.db.Query(
		`SELECT date, employee, time_range, hours, raw_category, category, bucket, raw_location
		 FROM batch_lines WHERE batch_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("load lines of batch %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var line shift.Line
		var date, category string
		if err := rows.Scan(&date, &line.Employee, &line.TimeRange, &line.Hours, &line.RawCategory, &category, &line.Bucket, &line.RawLocation); err != nil {
			return nil, fmt.Errorf("scan line of batch %s: %w", id, err)
		}
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", date, err)
		}
		line.Date = parsed
		line.Category = shift.Category(category)
		batch.Lines = append(batch.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lines of batch %s: %w", id, err)
	}

	return batch, nil
}

func (s *SQLiteStore) DeleteBatch(id string) error {
	if _, err := s.db.Exec(`DELETE FROM batch_lines WHERE batch_id = ?`, id); err != nil {
		return fmt.Errorf("delete lines of batch %s: %w", id, err)
	}
	if _, err := s.db.Exec(`DELETE FROM batches WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete batch %s: %w", id, err)
	}
	return nil
}
