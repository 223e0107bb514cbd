// Package storage provides SQLite-based persistence for match replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/tavrin/tui-pong/internal/core"
	"github.com/tavrin/tui-pong/internal/replay"
)

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayInfo is the listing view of a stored replay, without its events.
type ReplayInfo struct {
	ID         int64
	Ticks      int
	ScoreLeft  int
	ScoreRight int
	Winner     core.PlayerID
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
			ticks INTEGER NOT NULL,
			score_left INTEGER NOT NULL,
			score_right INTEGER NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			events BLOB NOT NULL,
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

// SaveReplay stores a finished recording.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(rec replay.Recording) (int64, error) {
	events, err := replay.EncodeEvents(rec.Events)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO replays (ticks, score_left, score_right, winner, events)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Ticks, rec.ScoreLeft, rec.ScoreRight, int(rec.Winner), events,
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

// ListReplays retrieves the most recent replays, newest first.
func (s *Store) ListReplays(limit int) ([]ReplayInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, ticks, score_left, score_right, winner, created_at
		 FROM replays
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var infos []ReplayInfo
	for rows.Next() {
		var info ReplayInfo
		var winner int
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Ticks, &info.ScoreLeft, &info.ScoreRight,
			&winner, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.Winner = core.PlayerID(winner)
		info.CreatedAt = parseTimestamp(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// GetReplay retrieves a full recording by ID.
func (s *Store) GetReplay(id int64) (replay.Recording, error) {
	var rec replay.Recording
	var winner int
	var events []byte

	err := s.db.QueryRow(
		`SELECT ticks, score_left, score_right, winner, events
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&rec.Ticks, &rec.ScoreLeft, &rec.ScoreRight, &winner, &events)

	if err == sql.ErrNoRows {
		return rec, fmt.Errorf("storage: replay %d not found", id)
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	rec.Winner = core.PlayerID(winner)
	rec.Events, err = replay.DecodeEvents(events)
	if err != nil {
		return rec, fmt.Errorf("storage: replay %d is corrupt: %w", id, err)
	}

	return rec, nil
}

// DeleteReplay removes a replay by ID.
func (s *Store) DeleteReplay(id int64) error {
	_, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
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
