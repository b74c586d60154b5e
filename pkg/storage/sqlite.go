package storage

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"

	"fairway/pkg/round"
)

// SQLiteStore keeps rounds in a local SQLite database. It implements the
// same replace-the-collection contract as the file store: Save runs in
// one transaction, so readers see either the old list or the new one.
type SQLiteStore struct {
	sql  *sql.DB
	path string
}

// OpenSQLite opens (and if needed creates) the round database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS rounds (
  id            TEXT PRIMARY KEY,
  position      INTEGER NOT NULL,
  date          TEXT NOT NULL,
  score         INTEGER NOT NULL,
  course_rating REAL NOT NULL,
  slope         INTEGER NOT NULL,
  differential  REAL NOT NULL,
  course        TEXT,
  created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_rounds_position ON rounds(position);
	`); err != nil {
		return nil, err
	}
	return &SQLiteStore{sql: db, path: path}, nil
}

// Load returns the stored rounds in saved order, newest first.
func (s *SQLiteStore) Load() ([]round.Round, error) {
	rows, err := s.sql.Query("SELECT id, date, score, course_rating, slope, differential, COALESCE(course, '') FROM rounds ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []round.Round
	for rows.Next() {
		var r round.Round
		if err := rows.Scan(&r.ID, &r.Date, &r.Score, &r.CourseRating, &r.Slope, &r.Differential, &r.Course); err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

// Save replaces the whole collection, recording the slice order as the
// canonical one.
func (s *SQLiteStore) Save(rounds []round.Round) error {
	tx, err := s.sql.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM rounds"); err != nil {
		return mapSQLiteErr(err)
	}
	for i, r := range rounds {
		_, err = tx.Exec(
			"INSERT INTO rounds(id, position, date, score, course_rating, slope, differential, course) VALUES(?,?,?,?,?,?,?,?)",
			r.ID, i, r.Date, r.Score, r.CourseRating, r.Slope, r.Differential, nullIfEmpty(r.Course),
		)
		if err != nil {
			return mapSQLiteErr(err)
		}
	}
	if err = tx.Commit(); err != nil {
		return mapSQLiteErr(err)
	}
	return nil
}

// Clear removes every stored round.
func (s *SQLiteStore) Clear() error {
	_, err := s.sql.Exec("DELETE FROM rounds")
	return mapSQLiteErr(err)
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.sql == nil {
		return nil
	}
	return s.sql.Close()
}

// Path returns the database file location, for the db shell command.
func (s *SQLiteStore) Path() string { return s.path }

// mapSQLiteErr turns the driver's disk-full failure into the storage
// taxonomy; everything else passes through.
func mapSQLiteErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "database or disk is full") {
		return &CapacityError{}
	}
	return err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
