// Package store persists imported event logs in SQLite so large
// exports can be reloaded without re-parsing.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jcjones/flightcircle-statistics/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// Repository defines the event-log storage operations.
type Repository interface {
	InsertBatch(events []models.Event) error
	LoadEvents() ([]models.Event, error)
	Count() (int, error)
	Close() error
}

// DB implements Repository using SQLite.
type DB struct {
	db *sql.DB
}

// Open creates or opens an event store at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	store := &DB{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initSchema() error {
	schema := `CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		aircraft TEXT NOT NULL,
		location TEXT NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL,
		event_type TEXT NOT NULL,
		tach_total REAL
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_events_aircraft ON events(aircraft)`,
		`CREATE INDEX IF NOT EXISTS idx_events_start_time ON events(start_time)`,
	}

	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	for _, idx := range indexes {
		if _, err := d.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// InsertBatch inserts events in a single transaction, preserving
// their order. First-seen ordering of aircraft and airports depends on
// insertion order surviving a round trip, so rows load back by id.
func (d *DB) InsertBatch(events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO events (
		aircraft, location, start_time, end_time, event_type, tach_total
	) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, evt := range events {
		tach := sql.NullFloat64{Float64: evt.TachTotal, Valid: evt.TachValid}
		if _, err := stmt.Exec(
			evt.Aircraft,
			evt.Location,
			evt.Start.Format(models.TimestampLayout),
			evt.End.Format(models.TimestampLayout),
			string(evt.Type),
			tach,
		); err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LoadEvents returns all stored events in insertion order.
func (d *DB) LoadEvents() ([]models.Event, error) {
	rows, err := d.db.Query(`SELECT aircraft, location, start_time, end_time, event_type, tach_total
		FROM events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var (
			evt       models.Event
			startRaw  string
			endRaw    string
			eventType string
			tach      sql.NullFloat64
		)
		if err := rows.Scan(&evt.Aircraft, &evt.Location, &startRaw, &endRaw, &eventType, &tach); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if evt.Start, err = time.Parse(models.TimestampLayout, startRaw); err != nil {
			return nil, fmt.Errorf("stored start timestamp %q: %w", startRaw, err)
		}
		if evt.End, err = time.Parse(models.TimestampLayout, endRaw); err != nil {
			return nil, fmt.Errorf("stored end timestamp %q: %w", endRaw, err)
		}
		evt.Type = models.EventType(eventType)
		evt.TachTotal = tach.Float64
		evt.TachValid = tach.Valid

		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}

// Count returns the number of stored events.
func (d *DB) Count() (int, error) {
	var count int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
