// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package session defines the core identity entities and rules of Hanashi.
//
// # Architecture
//
// Entities in this package represent the "Truth" of the identity system.
// They have no dependencies on outer layers (like storage or the CLI).
// This makes the core logic highly testable and resilient to technology changes.
package session

// User represents a registered account.
//
// # Rules
//   - Email is unique and is the lookup key for login.
//   - Secret is stored and compared verbatim; there is no network boundary
//     in scope, so the threat model never leaves the local machine.
//   - Accounts are never updated or deleted once registered.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"username"`
	Email       string `json:"email"`
	Secret      string `json:"password"`
}

// Project derives the persisted [Session] view of the account.
// The secret is excluded — it never leaves the account collection.
func (u User) Project() *Session {
	return &Session{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}

// Session represents the active authenticated identity.
//
// # Lifecycle
//
// Created on successful login or registration, persisted so it survives a
// process restart, and destroyed on logout. At most one session exists at a
// time: the application is a single-user client.
type Session struct {
	ID          string `json:"id"`
	DisplayName string `json:"username"`
	Email       string `json:"email"`
}
