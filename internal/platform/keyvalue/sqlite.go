// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package keyvalue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// schema is the single-table layout backing the key/value contract.
// Bootstrap is idempotent so every open re-runs it.
const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`

// SQLiteStore implements [Store] on an embedded SQLite database.
//
// # Why SQLite for a key/value map?
//
// The contract is a single untyped string-keyed map with synchronous local
// writes. A one-table SQLite file satisfies that while giving crash-safe
// durability for free, with no server process to manage.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and bootstraps the schema.
//
// # Parameters
//   - ctx: Context for the bootstrap statements.
//   - path: Filesystem path of the database file, or ":memory:".
//   - logger: Structured logger for storage-level events.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("keyvalue: failed to open sqlite database: %w", err)
	}

	// The application is single-threaded; a single connection also sidesteps
	// SQLITE_BUSY between the session and content domains.
	db.SetMaxOpenConns(1)

	// Bootstrap the schema before handing the store out.
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("keyvalue: failed to bootstrap schema: %w", err)
	}

	logger.Info("keyvalue store opened", slog.String("path", path))

	return &SQLiteStore{db: db}, nil
}

/*
Get returns the blob stored under key.

Parameters:
  - ctx: context.Context
  - key: string

Returns:
  - []byte: Stored blob
  - error: [ErrNotFound] or driver errors
*/
func (store *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM kv WHERE key = ?`

	var value []byte
	err := store.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("sqlite_store_get_failed: %w", err)
	}

	return value, nil
}

/*
Set stores value under key, replacing any previous blob.

Parameters:
  - ctx: context.Context
  - key: string
  - value: []byte

Returns:
  - error: Driver or disk errors
*/
func (store *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := store.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("sqlite_store_set_failed: %w", err)
	}

	return nil
}

/*
Delete removes key from the store. Absent keys are a no-op.

Parameters:
  - ctx: context.Context
  - key: string

Returns:
  - error: Driver or disk errors
*/
func (store *SQLiteStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv WHERE key = ?`

	if _, err := store.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("sqlite_store_delete_failed: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (store *SQLiteStore) Close() error {
	return store.db.Close()
}

// Ping verifies that the database file is reachable and writable.
func (store *SQLiteStore) Ping(ctx context.Context) error {
	if err := store.db.PingContext(ctx); err != nil {
		return fmt.Errorf("keyvalue: ping failed: %w", err)
	}
	return nil
}
