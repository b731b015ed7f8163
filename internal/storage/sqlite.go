// Package storage provides SQLite-based persistence for world snapshots
// and headless run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Snapshot is one saved world state. Data holds an encoded automaton
// snapshot record; the other fields are denormalized for listing.
type Snapshot struct {
	ID         int64
	Name       string
	Variant    string
	Kind       string
	Generation int
	Population int
	Rule       string
	Data       []byte
	CreatedAt  time.Time
}

// RunRecord summarizes a headless simulation run.
type RunRecord struct {
	ID              int64
	Variant         string
	Seed            int64
	Rule            string
	Generations     int
	FinalPopulation int
	Duration        time.Duration
	CreatedAt       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			kind TEXT NOT NULL,
			generation INTEGER NOT NULL,
			population INTEGER NOT NULL,
			rule TEXT NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_variant ON snapshots(variant);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			rule TEXT NOT NULL,
			generations INTEGER NOT NULL,
			final_population INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSnapshot stores a snapshot under its name, replacing any existing
// snapshot with the same name. Returns the row ID.
func (s *Store) SaveSnapshot(snap Snapshot) (int64, error) {
	if snap.Name == "" {
		return 0, errors.New("storage: snapshot name is required")
	}
	_, err := s.db.Exec(
		`INSERT INTO snapshots (name, variant, kind, generation, population, rule, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   variant = excluded.variant,
		   kind = excluded.kind,
		   generation = excluded.generation,
		   population = excluded.population,
		   rule = excluded.rule,
		   data = excluded.data,
		   created_at = CURRENT_TIMESTAMP`,
		snap.Name, snap.Variant, snap.Kind, snap.Generation, snap.Population, snap.Rule, snap.Data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	var id int64
	if err := s.db.QueryRow("SELECT id FROM snapshots WHERE name = ?", snap.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot get snapshot ID: %w", err)
	}
	return id, nil
}

// LoadSnapshot retrieves a snapshot by name. Returns nil if none exists.
func (s *Store) LoadSnapshot(name string) (*Snapshot, error) {
	var snap Snapshot
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, name, variant, kind, generation, population, rule, data, created_at
		 FROM snapshots
		 WHERE name = ?`,
		name,
	).Scan(&snap.ID, &snap.Name, &snap.Variant, &snap.Kind, &snap.Generation,
		&snap.Population, &snap.Rule, &snap.Data, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}
	snap.CreatedAt = parseTimestamp(createdAt)
	return &snap, nil
}

// ListSnapshots returns snapshot metadata, newest first, without cell
// data. An empty variant lists every variant.
func (s *Store) ListSnapshots(variant string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, name, variant, kind, generation, population, rule, created_at
		 FROM snapshots
		 WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var createdAt any
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Variant, &snap.Kind,
			&snap.Generation, &snap.Population, &snap.Rule, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		snap.CreatedAt = parseTimestamp(createdAt)
		out = append(out, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeleteSnapshot removes a snapshot. Reports whether one was deleted.
func (s *Store) DeleteSnapshot(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM snapshots WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n > 0, nil
}

// SaveRun records a finished headless run. Returns the row ID.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (variant, seed, rule, generations, final_population, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Variant, run.Seed, run.Rule, run.Generations, run.FinalPopulation,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the latest runs for a variant, newest first.
func (s *Store) RecentRuns(variant string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, rule, generations, final_population, duration_ms, created_at
		 FROM runs
		 WHERE variant = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Seed, &r.Rule, &r.Generations,
			&r.FinalPopulation, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
