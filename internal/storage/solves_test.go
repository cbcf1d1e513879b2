package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestMigrateUpIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Errorf("second MigrateUp failed: %v", err)
	}
}

func TestCreateAndGetSolve(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	id, err := repo.Create("ida", "R U R' U'", "U R U' R'", 4, 1234, 250*time.Millisecond)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned empty ID")
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil for existing solve")
	}

	if s.Strategy != "ida" {
		t.Errorf("Strategy = %q, want %q", s.Strategy, "ida")
	}
	if s.Scramble != "R U R' U'" {
		t.Errorf("Scramble = %q, want %q", s.Scramble, "R U R' U'")
	}
	if s.Solution != "U R U' R'" {
		t.Errorf("Solution = %q, want %q", s.Solution, "U R U' R'")
	}
	if s.MoveCount != 4 {
		t.Errorf("MoveCount = %d, want 4", s.MoveCount)
	}
	if s.Nodes != 1234 {
		t.Errorf("Nodes = %d, want 1234", s.Nodes)
	}
	if s.DurationMs != 250 {
		t.Errorf("DurationMs = %d, want 250", s.DurationMs)
	}
	if s.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestGetMissingSolveReturnsNil(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	s, err := repo.Get("no-such-id")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s != nil {
		t.Errorf("Get returned %v for missing solve, want nil", s)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	// Distinct timestamps matter for ordering; RFC3339 has second precision.
	ids := make([]string, 3)
	for i := range ids {
		id, err := repo.Create("iddfs", "R U", "U' R'", 2, 100, time.Millisecond)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids[i] = id
		time.Sleep(1100 * time.Millisecond)
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("List returned %d solves, want 3", len(solves))
	}
	if solves[0].SolveID != ids[2] {
		t.Errorf("first listed solve = %s, want newest %s", solves[0].SolveID, ids[2])
	}

	limited, err := repo.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d solves, want 2", len(limited))
	}
}

func TestListEmptyDatabase(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(solves) != 0 {
		t.Errorf("List returned %d solves on empty database, want 0", len(solves))
	}
}
