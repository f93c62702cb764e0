// Package store persists the ledger document in a local SQLite database,
// used as a durable key-value store: the whole state is serialized as one
// JSON value under a fixed key, so a load after save always observes the
// exact saved document.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"pennyledger/internal/ledger"
)

const stateKey = "finance_data"

type SQLite struct {
	db *sql.DB
}

// Open creates (if needed) and opens the database at path.
func Open(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// A single writer at a time, per the ledger's concurrency model.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating app_state table: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load returns the persisted ledger state, ledger.ErrNoState when
// nothing has been saved yet, or a decode error for a corrupt value.
func (s *SQLite) Load(ctx context.Context) (*ledger.State, error) {
	var raw []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, stateKey,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrNoState
	}

	if err != nil {
		return nil, fmt.Errorf("reading persisted state: %w", err)
	}

	var st ledger.State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decoding persisted state: %w", err)
	}

	return &st, nil
}

// Save overwrites the persisted ledger state.
func (s *SQLite) Save(ctx context.Context, state *ledger.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, stateKey, raw)
	if err != nil {
		return fmt.Errorf("writing persisted state: %w", err)
	}

	return nil
}
