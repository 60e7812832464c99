// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Hanashi.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and the outcomes surfaced to the front end.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Taxonomy: Business-rule failures (VALIDATION_ERROR, CONFLICT, UNAUTHORIZED)
    are recoverable by the caller; STORAGE_ERROR means the persistent medium
    rejected the operation and nothing was applied.
  - Mapping: Explicit constructors so the service layer never invents codes inline.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
the front end can distinguish "try a different email" from "storage is unavailable".
*/
package apperr

import (
	"errors"
)

// AppError is the canonical error type for the Hanashi core.
//
// It carries a machine-readable code, a client-safe message, and an optional
// slice of field-level validation errors.
//
// # Security
//
// The Cause field is for logging only and is never shown to users
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "CONFLICT", "STORAGE_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to show to the user.
	Message string `json:"error"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR outcomes.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the input field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Business Failures

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Post") // Returns "Post not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: resource + " not found",
	}
}

// Unauthorized creates an UNAUTHORIZED [AppError] for credential mismatches.
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: msg,
	}
}

// Conflict creates a CONFLICT [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: msg,
	}
}

// ValidationError creates a VALIDATION_ERROR [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: msg,
		Details: details,
	}
}

// # Infrastructure Failures

// Storage creates a STORAGE_ERROR [AppError] wrapping a persistent-medium fault.
//
// A STORAGE_ERROR guarantees the attempted operation was not applied: the
// service layer writes storage before mutating any in-memory state.
func Storage(cause error) *AppError {
	return &AppError{
		Code:    "STORAGE_ERROR",
		Message: "Storage is unavailable",
		Cause:   cause,
	}
}

// Internal creates an INTERNAL_ERROR [AppError] wrapping an unexpected failure.
// The cause is stored for logging but is never shown to the user.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsCode reports whether err carries the given machine-readable code.
func IsCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
