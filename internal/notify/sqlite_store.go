package notify

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reminders (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	at TEXT NOT NULL,
	created_at TEXT NOT NULL
);`

// SQLiteScheduler persists reminders in a local SQLite database so that
// listing and cancelling work across invocations.
type SQLiteScheduler struct {
	path string
	db   *sql.DB
}

func NewSQLiteScheduler(path string) *SQLiteScheduler {
	return &SQLiteScheduler{path: path}
}

// Open creates the database and its directory if needed.
func (s *SQLiteScheduler) Open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open reminder database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create reminders table: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteScheduler) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteScheduler) Schedule(r Reminder) (Reminder, error) {
	if s.db == nil {
		return Reminder{}, fmt.Errorf("scheduler not open")
	}

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		"INSERT INTO reminders (id, title, body, at, created_at) VALUES (?, ?, ?, ?, ?)",
		r.ID, r.Title, r.Body, r.At.Format(time.RFC3339), r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Reminder{}, fmt.Errorf("failed to schedule reminder: %w", err)
	}
	return r, nil
}

func (s *SQLiteScheduler) List() ([]Reminder, error) {
	if s.db == nil {
		return nil, fmt.Errorf("scheduler not open")
	}

	rows, err := s.db.Query("SELECT id, title, body, at, created_at FROM reminders ORDER BY at")
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []Reminder
	for rows.Next() {
		var r Reminder
		var at, createdAt string
		if err := rows.Scan(&r.ID, &r.Title, &r.Body, &at, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		if r.At, err = time.Parse(time.RFC3339, at); err != nil {
			return nil, fmt.Errorf("invalid reminder time %q: %w", at, err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("invalid reminder created_at %q: %w", createdAt, err)
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *SQLiteScheduler) Cancel(id string) error {
	if s.db == nil {
		return fmt.Errorf("scheduler not open")
	}

	res, err := s.db.Exec("DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to cancel reminder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("reminder not found: %s", id)
	}
	return nil
}
