package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is a recorded solve in the database.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Strategy   string
	Scramble   string
	Solution   string
	MoveCount  int
	Nodes      uint64
	DurationMs int64
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a finished solve and returns its ID.
func (r *SolveRepository) Create(strategy, scramble, solution string, moveCount int, nodes uint64, duration time.Duration) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, strategy, scramble_text, solution_text, move_count, nodes, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), strategy, scramble, solution, moveCount, nodes, duration.Milliseconds())

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil without error when not found.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, strategy, scramble_text, solution_text, move_count, nodes, duration_ms
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &createdAtStr, &s.Strategy,
		&s.Scramble, &s.Solution, &s.MoveCount,
		&s.Nodes, &s.DurationMs,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
	}

	return &s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, strategy, scramble_text, solution_text, move_count, nodes, duration_ms
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string
		if err := rows.Scan(
			&s.SolveID, &createdAtStr, &s.Strategy,
			&s.Scramble, &s.Solution, &s.MoveCount,
			&s.Nodes, &s.DurationMs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solve timestamp: %w", err)
		}
		solves = append(solves, s)
	}

	return solves, rows.Err()
}
