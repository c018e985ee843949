package record

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Session is the catalog entry for one recorded game: where the frames
// live and enough metadata to list and replay them. Scores live in the
// frames themselves, not in the catalog.
type Session struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
	Ticks     uint64    `json:"ticks"`
}

// Catalog stores session metadata in a sqlite file.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens (or creates) the catalog database at path.
func OpenCatalog(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create catalog dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		file TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME NOT NULL,
		ticks INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Add inserts a finished session.
func (c *Catalog) Add(s Session) error {
	_, err := c.db.Exec(
		`INSERT INTO sessions (id, file, width, height, started_at, ended_at, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.File, s.Width, s.Height, s.StartedAt, s.EndedAt, s.Ticks,
	)
	if err != nil {
		return fmt.Errorf("failed to add session %s: %w", s.ID, err)
	}
	return nil
}

// Get returns the session with the given id.
func (c *Catalog) Get(id string) (Session, error) {
	row := c.db.QueryRow(
		`SELECT id, file, width, height, started_at, ended_at, ticks
		 FROM sessions WHERE id = ?`, id)

	var s Session
	err := row.Scan(&s.ID, &s.File, &s.Width, &s.Height, &s.StartedAt, &s.EndedAt, &s.Ticks)
	if err == sql.ErrNoRows {
		return Session{}, fmt.Errorf("session %s not found", id)
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return s, nil
}

// Sessions lists all sessions, newest first.
func (c *Catalog) Sessions() ([]Session, error) {
	rows, err := c.db.Query(
		`SELECT id, file, width, height, started_at, ended_at, ticks
		 FROM sessions ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.File, &s.Width, &s.Height, &s.StartedAt, &s.EndedAt, &s.Ticks); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Close releases the database handle.
func (c *Catalog) Close() error {
	return c.db.Close()
}
