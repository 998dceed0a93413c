// Package journal persists a mission journal of orchestration events in
// SQLite. Each event ties a staged-protocol step to the mission it ran
// under.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Event is one recorded orchestration step.
type Event struct {
	MissionID string
	Step      string
	Detail    string
	At        time.Time
}

// Journal is a sqlite-backed event log. Safe for use from multiple
// goroutines; writes are serialized on a single connection.
type Journal struct {
	db *sql.DB
	mu sync.Mutex
}

// Open initializes the journal database at path, creating the directory and
// schema as needed. Use ":memory:" in tests.
func Open(path string) (*Journal, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	// WAL gives crash recovery with NORMAL-speed writes; a no-op for the
	// in-memory journal.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal_mode: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS mission_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		mission_id TEXT NOT NULL,
		step TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		recorded_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_mission_events_mission
		ON mission_events(mission_id);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("initialize journal schema: %w", err)
	}
	return nil
}

// Record appends one event. Satisfies the scheme runner's Recorder contract.
func (j *Journal) Record(missionID, step, detail string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(
		"INSERT INTO mission_events (mission_id, step, detail, recorded_at) VALUES (?, ?, ?, ?)",
		missionID, step, detail, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// Recent returns up to n events, newest first.
func (j *Journal) Recent(n int) ([]Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(
		"SELECT mission_id, step, detail, recorded_at FROM mission_events ORDER BY id DESC LIMIT ?",
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var recordedAt int64
		if err := rows.Scan(&e.MissionID, &e.Step, &e.Detail, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.At = time.UnixMilli(recordedAt)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// Mission returns all events for one mission, oldest first.
func (j *Journal) Mission(missionID string) ([]Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.Query(
		"SELECT mission_id, step, detail, recorded_at FROM mission_events WHERE mission_id = ? ORDER BY id ASC",
		missionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query mission: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var recordedAt int64
		if err := rows.Scan(&e.MissionID, &e.Step, &e.Detail, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.At = time.UnixMilli(recordedAt)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mission: %w", err)
	}
	return events, nil
}

// Close releases the database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}
