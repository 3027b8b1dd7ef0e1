// Package storage provides SQLite-based persistence for flight results.
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

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Store manages the SQLite database connection for the flight log.
type Store struct {
	db *sql.DB
}

// Flight represents a single finished flight.
type Flight struct {
	ID        int64
	LevelID   string
	Outcome   string // "landed" or "crashed"
	Duration  time.Duration
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Attempts   int
	Landings   int
	Crashes    int
	Best       time.Duration // Fastest landing, 0 if never landed
	LastPlayed time.Time
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('landed', 'crashed')),
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_flights_level_id ON flights(level_id);
		CREATE INDEX IF NOT EXISTS idx_flights_best ON flights(level_id, outcome, duration_ms);
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

// SaveFlight records a finished flight on the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveFlight(levelID string, outcome core.Outcome, d time.Duration) (int64, error) {
	if outcome == core.OutcomeNone {
		return 0, fmt.Errorf("storage: cannot save flight without outcome")
	}

	result, err := s.db.Exec(
		"INSERT INTO flights (level_id, outcome, duration_ms) VALUES (?, ?, ?)",
		levelID, outcome.String(), d.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save flight: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestLandings retrieves the fastest N landings on the given level.
func (s *Store) BestLandings(levelID string, limit int) ([]Flight, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, outcome, duration_ms, created_at
		 FROM flights
		 WHERE level_id = ? AND outcome = 'landed'
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query landings: %w", err)
	}
	return scanFlights(rows)
}

// RecentFlights retrieves the most recent N flights. An empty levelID
// covers every level.
func (s *Store) RecentFlights(levelID string, limit int) ([]Flight, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, outcome, duration_ms, created_at
		 FROM flights
		 WHERE ? = '' OR level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query flights: %w", err)
	}
	return scanFlights(rows)
}

func scanFlights(rows *sql.Rows) ([]Flight, error) {
	defer rows.Close()

	var flights []Flight
	for rows.Next() {
		var f Flight
		var ms int64
		var createdAt any
		if err := rows.Scan(&f.ID, &f.LevelID, &f.Outcome, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		f.Duration = time.Duration(ms) * time.Millisecond
		f.CreatedAt = parseTime(createdAt)
		flights = append(flights, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return flights, nil
}

// LevelStats retrieves aggregated statistics for a specific level.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'landed'), 0),
		        COALESCE(SUM(outcome = 'crashed'), 0),
		        MIN(CASE WHEN outcome = 'landed' THEN duration_ms END)
		 FROM flights WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Attempts, &stats.Landings, &stats.Crashes, &best)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	if best.Valid {
		stats.Best = time.Duration(best.Int64) * time.Millisecond
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM flights WHERE level_id = ? ORDER BY id DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllLevelStats retrieves statistics for every level that has been flown.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*),
		        SUM(outcome = 'landed'),
		        SUM(outcome = 'crashed'),
		        MIN(CASE WHEN outcome = 'landed' THEN duration_ms END),
		        MAX(created_at)
		 FROM flights
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var best sql.NullInt64
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Attempts, &ls.Landings, &ls.Crashes, &best, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if best.Valid {
			ls.Best = time.Duration(best.Int64) * time.Millisecond
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearFlights deletes all flights for the given level, or every flight
// when levelID is empty.
func (s *Store) ClearFlights(levelID string) error {
	_, err := s.db.Exec("DELETE FROM flights WHERE ? = '' OR level_id = ?", levelID, levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear flights: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
