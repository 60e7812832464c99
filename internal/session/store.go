// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
)

// UserRepository defines the data access contract for registered accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is the key/value-backed repository in
// store_keyvalue.go.
type UserRepository interface {
	// FindByEmail returns the account with the given email.
	// The match is case-sensitive and exact.
	//
	// Returns [apperr.NotFound] if no account is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Append persists a brand-new account at the end of the collection.
	//
	// Uniqueness of the email is enforced by the service, not here: the
	// single-threaded execution model leaves no window between check and write.
	Append(ctx context.Context, user *User) error

	// All returns every registered account in registration order.
	All(ctx context.Context) ([]User, error)
}

// SessionRepository defines the data access contract for the persisted
// projection of the active session.
//
// # Domain Ownership
//
// Kept alongside [UserRepository] because the projection is derived entirely
// from an account owned by this domain.
type SessionRepository interface {
	// Load returns the persisted session projection.
	//
	// Returns [apperr.NotFound] if no projection is persisted or the stored
	// blob does not decode to the expected shape.
	Load(ctx context.Context) (*Session, error)

	// Save persists the projection, replacing any previous one.
	Save(ctx context.Context, session *Session) error

	// Clear removes the persisted projection. Clearing when none exists
	// is not an error.
	Clear(ctx context.Context) error
}
