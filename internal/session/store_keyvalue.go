// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/hanashi/internal/platform/apperr"
	"github.com/taibuivan/hanashi/internal/platform/constants"
	"github.com/taibuivan/hanashi/internal/platform/keyvalue"
)

// # err Mapping
//
// Storage-specific errors (like keyvalue.ErrNotFound) are mapped to
// domain-friendly [apperr.AppError] types; malformed blobs are read as empty
// collections and logged, never surfaced as faults.

// # User Repository

// KeyValueUserRepository implements [UserRepository] on the key/value store.
//
// The whole account collection lives under one key as a JSON array, read and
// rewritten whole — by value, never shared as a mutable reference.
type KeyValueUserRepository struct {
	store  keyvalue.Store
	logger *slog.Logger
}

// NewUserRepository creates a key/value-backed implementation of [UserRepository].
func NewUserRepository(store keyvalue.Store, logger *slog.Logger) *KeyValueUserRepository {
	return &KeyValueUserRepository{store: store, logger: logger}
}

/*
FindByEmail retrieves an account by its unique email address.

Description: Performs a linear scan of the persisted collection; the match is
case-sensitive and exact.

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or storage errors
*/
func (repository *KeyValueUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	users, err := repository.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			user := users[i]
			return &user, nil
		}
	}

	return nil, apperr.NotFound("User")
}

/*
Append persists a new account at the end of the collection.

Description: Reads the current collection, appends, and writes the whole
array back under the same key.

Parameters:
  - ctx: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: Storage write failures
*/
func (repository *KeyValueUserRepository) Append(ctx context.Context, user *User) error {
	users, err := repository.All(ctx)
	if err != nil {
		return err
	}

	users = append(users, *user)

	blob, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("keyvalue_user_repo_encode_failed: %w", err)
	}

	if err := repository.store.Set(ctx, constants.KeyUsers, blob); err != nil {
		return fmt.Errorf("keyvalue_user_repo_append_failed: %w", err)
	}

	return nil
}

/*
All returns every registered account in registration order.

Description: Schema-on-read decode of the persisted array. An absent key or a
blob that does not decode to the expected shape reads as an empty collection.

Parameters:
  - ctx: context.Context

Returns:
  - []User: Accounts, oldest first
  - error: Storage read failures
*/
func (repository *KeyValueUserRepository) All(ctx context.Context) ([]User, error) {
	blob, err := repository.store.Get(ctx, constants.KeyUsers)

	if err != nil {
		if errors.Is(err, keyvalue.ErrNotFound) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("keyvalue_user_repo_read_failed: %w", err)
	}

	var users []User
	if err := json.Unmarshal(blob, &users); err != nil {
		// Malformed persisted data is a non-fatal anomaly: log and read empty.
		repository.logger.Warn("discarding malformed account collection",
			slog.String("key", constants.KeyUsers),
			slog.Any("error", err),
		)
		return []User{}, nil
	}

	return users, nil
}

// # Session Repository

// KeyValueSessionRepository implements [SessionRepository] on the key/value store.
type KeyValueSessionRepository struct {
	store  keyvalue.Store
	logger *slog.Logger
}

// NewSessionRepository creates a key/value-backed implementation of [SessionRepository].
func NewSessionRepository(store keyvalue.Store, logger *slog.Logger) *KeyValueSessionRepository {
	return &KeyValueSessionRepository{store: store, logger: logger}
}

/*
Load returns the persisted session projection.

Description: Absent and malformed blobs both read as "no session" so a broken
store entry can never prevent the application from starting anonymous.

Parameters:
  - ctx: context.Context

Returns:
  - *Session: Persisted projection
  - error: apperr.NotFound or storage errors
*/
func (repository *KeyValueSessionRepository) Load(ctx context.Context) (*Session, error) {
	blob, err := repository.store.Get(ctx, constants.KeySession)

	if err != nil {
		if errors.Is(err, keyvalue.ErrNotFound) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("keyvalue_session_repo_read_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(blob, session); err != nil {
		repository.logger.Warn("discarding malformed session projection",
			slog.String("key", constants.KeySession),
			slog.Any("error", err),
		)
		return nil, apperr.NotFound("Session")
	}

	return session, nil
}

/*
Save persists the session projection, replacing any previous one.

Parameters:
  - ctx: context.Context
  - session: *Session

Returns:
  - error: Storage write failures
*/
func (repository *KeyValueSessionRepository) Save(ctx context.Context, session *Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("keyvalue_session_repo_encode_failed: %w", err)
	}

	if err := repository.store.Set(ctx, constants.KeySession, blob); err != nil {
		return fmt.Errorf("keyvalue_session_repo_save_failed: %w", err)
	}

	return nil
}

/*
Clear removes the persisted projection. Clearing when none exists is a no-op.

Parameters:
  - ctx: context.Context

Returns:
  - error: Storage delete failures
*/
func (repository *KeyValueSessionRepository) Clear(ctx context.Context) error {
	if err := repository.store.Delete(ctx, constants.KeySession); err != nil {
		return fmt.Errorf("keyvalue_session_repo_clear_failed: %w", err)
	}

	return nil
}
