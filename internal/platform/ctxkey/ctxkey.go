// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines private context key types to avoid collisions
// between packages storing values in a [context.Context].
package ctxkey

// Key is the private type for all Hanashi context keys.
type Key string

const (
	// KeyLogger carries the operation-scoped *slog.Logger.
	KeyLogger Key = "logger"

	// KeyCommandID carries the identifier assigned to one REPL command cycle.
	KeyCommandID Key = "command_id"
)
