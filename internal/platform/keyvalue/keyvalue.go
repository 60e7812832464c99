// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package keyvalue provides the local string-keyed blob storage for Hanashi.

The entire application state (accounts, the active session projection, and
user-authored posts) lives in a single untyped map from string keys to JSON
blobs. This package defines that contract and its backends.

Core Responsibilities:

  - Locality: Storage is a local, synchronous resource; no network hop.
  - Durability: The SQLite backend survives process restarts.
  - Neutrality: Values are opaque bytes; schema-on-read lives with the callers.

The execution model is single-threaded and event-driven, so at most one
operation touches the medium at a time.
*/
package keyvalue

import (
	"context"
	"errors"
)

// ErrNotFound is returned by [Store.Get] when the key has never been written
// or has been deleted. Callers treat it as "empty", never as a fault.
var ErrNotFound = errors.New("keyvalue: key not found")

// Store is the storage contract shared by the session and content domains.
//
// # Implementations
//
// [SQLiteStore] is the canonical persistent backend; [MemoryStore] backs
// tests and ephemeral runs. Both are synchronous.
type Store interface {
	// Get returns the blob stored under key.
	//
	// Returns [ErrNotFound] if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous blob atomically.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying medium.
	Close() error
}
