// Package persistence provides SQLite-based storage for reigns: the flat
// save state written after every year and the log of what happened.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/king/internal/economy"
	"github.com/talgya/king/internal/engine"
)

// ErrNoSave is returned when there is nothing to resume.
var ErrNoSave = errors.New("no saved reign")

// DB wraps a SQLite connection for reign persistence.
type DB struct {
	conn *sqlx.DB
}

// SaveState is the flat record an interrupted reign is restored from.
type SaveState struct {
	ReignID    string  `db:"reign_id"`
	Years      int     `db:"years"` // years completed
	Rallods    float64 `db:"rallods"`
	Countrymen float64 `db:"countrymen"`
	Foreigners float64 `db:"foreigners"`
	Land       float64 `db:"land"`
	SavedAt    int64   `db:"saved_at"` // unix seconds
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reigns (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS save_states (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		reign_id TEXT NOT NULL REFERENCES reigns(id),
		years INTEGER NOT NULL,
		rallods REAL NOT NULL,
		countrymen REAL NOT NULL,
		foreigners REAL NOT NULL,
		land REAL NOT NULL,
		saved_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		reign_id TEXT NOT NULL REFERENCES reigns(id),
		year INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_save_states_reign ON save_states(reign_id);
	CREATE INDEX IF NOT EXISTS idx_events_reign ON events(reign_id, year);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveState appends a save state for the reign, registering the reign on
// first save.
func (db *DB) SaveState(s SaveState) error {
	if s.SavedAt == 0 {
		s.SavedAt = time.Now().Unix()
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO reigns (id, created_at) VALUES (?, ?)",
		s.ReignID, s.SavedAt,
	); err != nil {
		return fmt.Errorf("insert reign %s: %w", s.ReignID, err)
	}

	if _, err := tx.NamedExec(`INSERT INTO save_states
		(reign_id, years, rallods, countrymen, foreigners, land, saved_at)
		VALUES (:reign_id, :years, :rallods, :countrymen, :foreigners, :land, :saved_at)`, s); err != nil {
		return fmt.Errorf("insert save state: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES ('last_reign', ?)",
		s.ReignID,
	); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	return tx.Commit()
}

// LoadLatest returns the newest save state of the most recently saved reign.
func (db *DB) LoadLatest() (SaveState, error) {
	var s SaveState
	reignID, err := db.GetMeta("last_reign")
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrNoSave
	}
	if err != nil {
		return s, fmt.Errorf("last reign: %w", err)
	}

	err = db.conn.Get(&s, `SELECT reign_id, years, rallods, countrymen, foreigners, land, saved_at
		FROM save_states WHERE reign_id = ? ORDER BY id DESC LIMIT 1`, reignID)
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrNoSave
	}
	return s, err
}

// SaveEvents appends events of a reign.
func (db *DB) SaveEvents(reignID string, events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex("INSERT INTO events (reign_id, year, description, category) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(reignID, e.Year, e.Description, e.Category); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent N events of a reign, newest first.
func (db *DB) RecentEvents(reignID string, limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT year, description, category FROM events WHERE reign_id = ? ORDER BY id DESC LIMIT ?",
		reignID, limit,
	)
	return events, err
}

// SaveMeta stores a key-value pair in metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}

// SaveReign records the reign's current state and the events logged since
// the last call. Saved events are dropped from the reign.
func (db *DB) SaveReign(r *engine.Reign) error {
	c := r.Country
	slog.Info("saving reign", "id", r.ID, "years", r.YearsCompleted(), "events", len(r.Events))

	if err := db.SaveState(SaveState{
		ReignID:    r.ID,
		Years:      r.YearsCompleted(),
		Rallods:    c.Rallods(),
		Countrymen: c.Countrymen(),
		Foreigners: c.Workers(),
		Land:       c.ArableLand(),
	}); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := db.SaveEvents(r.ID, r.Events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	r.Events = r.Events[:0]
	return nil
}

// ResumeReign restores the last saved reign with deps.
func (db *DB) ResumeReign(d engine.Deps) (*engine.Reign, error) {
	s, err := db.LoadLatest()
	if err != nil {
		return nil, err
	}
	c := economy.RestoreCountry(s.Rallods, s.Countrymen, s.Foreigners, s.Land)
	r := engine.RestoreReign(d, s.ReignID, c, s.Years+1)
	slog.Info("reign resumed", "id", r.ID, "year", r.Year, "rallods", c.Rallods())
	return r, nil
}
