// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package keyvalue

import (
	"context"
)

// MemoryStore implements [Store] on a plain map.
//
// # Usage
//
// Backs unit tests and ephemeral runs where durability is not wanted.
// The execution model guarantees single-threaded access, so no mutex is held.
type MemoryStore struct {
	data map[string][]byte

	// failNext, when set, makes the next write operation return the error.
	// Test seam for simulating a storage fault.
	failNext error
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns the blob stored under key, or [ErrNotFound].
func (store *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := store.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy so callers can never mutate the stored blob in place.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of value under key.
func (store *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	if err := store.takeFault(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	store.data[key] = stored
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (store *MemoryStore) Delete(_ context.Context, key string) error {
	if err := store.takeFault(); err != nil {
		return err
	}

	delete(store.data, key)
	return nil
}

// Close is a no-op for the in-memory backend.
func (store *MemoryStore) Close() error { return nil }

// FailNextWrite arms a one-shot fault on the next Set or Delete.
func (store *MemoryStore) FailNextWrite(err error) {
	store.failNext = err
}

// takeFault consumes and returns the armed fault, if any.
func (store *MemoryStore) takeFault() error {
	err := store.failNext
	store.failNext = nil
	return err
}
