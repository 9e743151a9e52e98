// Package history persists resolved requests so past lookups can be
// listed from the command line.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"stockcast/internal/resolver"
)

type Store struct {
	db *sql.DB
}

// Record is one persisted resolution.
type Record struct {
	RowID          int64
	Input          string
	Symbol         string
	Mode           string
	Strategy       string
	Recommendation string
	Provider       string
	CreatedAt      string
}

// Open opens or creates the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("db path is required")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=3000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set pragma %s: %w", p, err)
		}
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS resolutions (
    input TEXT NOT NULL,
    symbol TEXT NOT NULL,
    mode TEXT NOT NULL,
    strategy TEXT NOT NULL,
    recommendation TEXT,
    provider TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_resolutions_symbol ON resolutions(symbol, created_at);
`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// RecordResolution stores one successful resolution. Failures are not
// recorded; only lookups that produced a displayable result matter.
func (s *Store) RecordResolution(ctx context.Context, input string, success *resolver.Success) error {
	if success == nil || success.Symbol == "" {
		return nil
	}

	recommendation := ""
	switch {
	case success.Signal != nil:
		recommendation = success.Signal.Signal
	case success.Analysis != nil && success.Analysis.Verdict != nil:
		recommendation = success.Analysis.Verdict.Recommendation
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO resolutions (input, symbol, mode, strategy, recommendation, provider)
VALUES (?, ?, ?, ?, ?, ?)
`, input, success.Symbol, string(success.Mode), string(success.Strategy), recommendation, string(success.Provider))
	if err != nil {
		return fmt.Errorf("insert resolution: %w", err)
	}
	return nil
}

// Recent lists the newest resolutions first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT rowid, input, symbol, mode, strategy, recommendation, provider, created_at
FROM resolutions
ORDER BY rowid DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list resolutions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.RowID, &rec.Input, &rec.Symbol, &rec.Mode, &rec.Strategy, &rec.Recommendation, &rec.Provider, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resolution: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list resolutions rows: %w", err)
	}
	return records, nil
}
