// Package storage provides SQLite-based persistence for game replays.
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

// Outcome values stored alongside a replay.
const (
	OutcomeVictory   = "victory"
	OutcomeDefeat    = "defeat"
	OutcomeAbandoned = "abandoned"
)

// ErrNotFound is returned when a replay does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// Replay is a recorded game: everything needed to re-simulate it.
type Replay struct {
	ID         int64
	Player     string
	Seed       int64
	Width      int
	Height     int
	Difficulty string
	Config     string // YAML snapshot of the tuning used
	Inputs     string // Run-length encoded per-tick inputs
	Ticks      int
	Outcome    string
	CreatedAt  time.Time
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

	// SQLite allows one writer at a time; SSH sessions share the store.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			config_yaml TEXT NOT NULL,
			inputs TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
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

// SaveReplay records a finished or abandoned game.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO replays (player, seed, width, height, difficulty, config_yaml, inputs, ticks, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Seed, r.Width, r.Height, r.Difficulty, r.Config, r.Inputs, r.Ticks, r.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Replay retrieves a single replay by ID.
func (s *Store) Replay(id int64) (Replay, error) {
	row := s.db.QueryRow(
		`SELECT id, player, seed, width, height, difficulty, config_yaml, inputs, ticks, outcome, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	)

	r, err := scanReplay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Replay{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return Replay{}, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	return r, nil
}

// RecentReplays retrieves the most recent replays, newest first.
func (s *Store) RecentReplays(limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, seed, width, height, difficulty, config_yaml, inputs, ticks, outcome, created_at
		 FROM replays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var replays []Replay
	for rows.Next() {
		r, err := scanReplay(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		replays = append(replays, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return replays, nil
}

// DeleteReplay removes a replay by ID.
func (s *Store) DeleteReplay(id int64) error {
	result, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReplay(row rowScanner) (Replay, error) {
	var r Replay
	var createdAt any
	if err := row.Scan(
		&r.ID,
		&r.Player,
		&r.Seed,
		&r.Width,
		&r.Height,
		&r.Difficulty,
		&r.Config,
		&r.Inputs,
		&r.Ticks,
		&r.Outcome,
		&createdAt,
	); err != nil {
		return Replay{}, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
