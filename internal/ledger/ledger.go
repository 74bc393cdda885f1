// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger keeps a SQLite history of generated badge sheets so a
// print run can be traced back to the names file and settings behind it.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/nametags/pkg/types"
)

// DefaultPath is where the history database lives unless overridden.
const DefaultPath = ".nametags/history.db"

const defaultLimit = 20

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path and its schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			config_file TEXT,
			names_file TEXT,
			output_file TEXT NOT NULL,
			names INTEGER NOT NULL,
			pages INTEGER NOT NULL,
			tags_per_page INTEGER NOT NULL,
			font TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts run and sets its ID. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, run *types.Run) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (created_at, config_file, names_file, output_file, names, pages, tags_per_page, font)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.ConfigFile, run.NamesFile, run.OutputFile,
		run.Names, run.Pages, run.TagsPerPage, run.Font,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading run id: %w", err)
	}
	run.ID = id
	return nil
}

// List returns up to limit runs, newest first. A limit of 0 or less uses
// the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, config_file, names_file, output_file, names, pages, tags_per_page, font
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var (
			r         types.Run
			createdAt string
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.ConfigFile, &r.NamesFile, &r.OutputFile,
			&r.Names, &r.Pages, &r.TagsPerPage, &r.Font); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run %d timestamp: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
