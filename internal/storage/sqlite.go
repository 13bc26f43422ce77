// Package storage provides SQLite-based persistence for solved puzzles.
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

// LocalPlayer is the player name recorded for games played in a local terminal.
const LocalPlayer = "local"

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// SolveEntry is one solved puzzle.
type SolveEntry struct {
	ID        int64
	Puzzle    int
	Name      string
	Player    string
	Moves     int
	Grades    int
	CreatedAt time.Time
}

// PuzzleStats contains aggregated statistics for one puzzle.
type PuzzleStats struct {
	Puzzle     int
	Solves     int
	BestMoves  int
	AvgMoves   float64
	LastSolved time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			player TEXT NOT NULL DEFAULT 'local',
			moves INTEGER NOT NULL,
			grades INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle ON solves(puzzle);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(puzzle, moves ASC);
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

// SaveSolve records a solved puzzle and returns the ID of the inserted record.
// An empty player is stored as LocalPlayer.
func (s *Store) SaveSolve(e SolveEntry) (int64, error) {
	if e.Player == "" {
		e.Player = LocalPlayer
	}
	result, err := s.db.Exec(
		"INSERT INTO solves (puzzle, name, player, moves, grades) VALUES (?, ?, ?, ?, ?)",
		e.Puzzle, e.Name, e.Player, e.Moves, e.Grades,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopSolves retrieves the best N solves for a puzzle.
// Fewer moves rank higher; ties go to the earlier solve.
func (s *Store) TopSolves(puzzle, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle, name, player, moves, grades, created_at
		 FROM solves
		 WHERE puzzle = ?
		 ORDER BY moves ASC, id ASC
		 LIMIT ?`,
		puzzle, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// RecentSolves retrieves the most recent solves across all puzzles.
func (s *Store) RecentSolves(limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle, name, player, moves, grades, created_at
		 FROM solves
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent solves: %w", err)
	}
	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]SolveEntry, error) {
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Puzzle, &e.Name, &e.Player, &e.Moves, &e.Grades, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestMoves returns the fewest moves any solve of the puzzle took.
// ok is false if the puzzle has never been solved.
func (s *Store) BestMoves(puzzle int) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE puzzle = ?",
		puzzle,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// ClearSolves deletes all solves of the given puzzle.
func (s *Store) ClearSolves(puzzle int) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE puzzle = ?", puzzle)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// PuzzleStats retrieves aggregated statistics for a specific puzzle.
func (s *Store) PuzzleStats(puzzle int) (*PuzzleStats, error) {
	stats := &PuzzleStats{Puzzle: puzzle}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0)
		 FROM solves WHERE puzzle = ?`,
		puzzle,
	).Scan(&stats.Solves, &stats.BestMoves, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}

	var lastSolved any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE puzzle = ? ORDER BY id DESC LIMIT 1`,
		puzzle,
	).Scan(&lastSolved)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solve: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTime(lastSolved)
	}

	return stats, nil
}

// AllPuzzleStats retrieves statistics for every puzzle that has been solved.
func (s *Store) AllPuzzleStats() (map[int]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle, COUNT(*), MIN(moves), AVG(moves), MAX(created_at)
		 FROM solves
		 GROUP BY puzzle`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*PuzzleStats)
	for rows.Next() {
		var ps PuzzleStats
		var lastSolved any
		if err := rows.Scan(&ps.Puzzle, &ps.Solves, &ps.BestMoves, &ps.AvgMoves, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastSolved = parseTime(lastSolved)
		stats[ps.Puzzle] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime converts a DATETIME column, which the driver may return either
// as time.Time or as text.
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
