// Package history persists a record of finalize runs so achievement trends
// can be reviewed after the report files themselves have been rewritten.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Run is one recorded finalize invocation.
type Run struct {
	ID        int64
	RunID     string
	Report    string
	Achieved  int
	Total     int
	Rate      float64
	CreatedAt time.Time
}

// Store manages the SQLite database of finalize runs
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a new Store instance and initializes the database
func NewStore(dbPath string) (*Store, error) {
	// Ensure parent directory exists for file-based databases
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout must come first so subsequent statements wait on locks
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun inserts a finalize run and returns its generated run id.
func (s *Store) RecordRun(ctx context.Context, reportPath string, achieved, total int, rate float64) (string, error) {
	runID := uuid.New().String()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, report_file, achieved, total, rate, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, reportPath, achieved, total, rate, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	return runID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, report_file, achieved, total, rate, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.RunID, &run.Report, &run.Achieved, &run.Total, &run.Rate, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}
