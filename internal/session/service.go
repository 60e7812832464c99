// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"log/slog"

	"github.com/taibuivan/hanashi/internal/platform/apperr"
	"github.com/taibuivan/hanashi/internal/platform/validate"
	"github.com/taibuivan/hanashi/pkg/uuid"
)

// Service implements the Session Store: it authenticates and registers
// accounts and owns the single active session.
//
// # State Machine
//
// Two states, ANONYMOUS and AUTHENTICATED. Register and Login move
// ANONYMOUS → AUTHENTICATED on success and are self-loops on failure (no
// state change, no partial persistence). Logout moves back to ANONYMOUS.
//
// # Atomicity
//
// Every state-changing operation writes storage first and mutates the
// in-memory session second, so a storage fault can never leave the two
// inconsistent.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	logger            *slog.Logger

	// current is the active session, or nil while anonymous.
	// Owned exclusively by this service; handed out by value semantics only.
	current *Session
}

// NewService constructs a new session [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		logger:            logger,
	}
}

/*
Initialize restores a previously persisted session, if any.

Description: Called once at process start. A missing or malformed persisted
projection means the application starts ANONYMOUS; initialization never fails.

Parameters:
  - ctx: context.Context
*/
func (service *Service) Initialize(ctx context.Context) {
	restored, err := service.sessionRepository.Load(ctx)

	// Absent, malformed, or unreadable all mean "no session".
	if err != nil {
		service.current = nil
		return
	}

	service.current = restored
	service.logger.Info("session restored",
		slog.String("user_id", restored.ID),
		slog.String("email", restored.Email),
	)
}

// Current returns a copy of the active session, or nil while anonymous.
func (service *Service) Current() *Session {
	if service.current == nil {
		return nil
	}

	copied := *service.current
	return &copied
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	DisplayName string
	Email       string
	Secret      string
}

/*
Register validates and persists a brand new account, then makes it the
active session.

Description: Fails with Conflict when the email is already registered
(case-sensitive exact match). On success the account is appended to the
persisted collection, the redacted projection is persisted, and only then
does the in-memory session change.

Parameters:
  - ctx: context.Context
  - input: RegisterInput

Returns:
  - *Session: The now-active session projection
  - error: Validation, Conflict, or storage errors
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {

	// Reject structurally invalid input before touching storage.
	v := &validate.Validator{}
	if err := v.
		Required("username", input.DisplayName).
		Required("email", input.Email).
		Required("password", input.Secret).
		Err(); err != nil {
		return nil, err
	}

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// A read fault is a storage problem, not "email available".
	if !apperr.IsCode(err, "NOT_FOUND") {
		return nil, apperr.Storage(err)
	}

	// Construct the new User entity. Time-sortable ID stays unique even for
	// rapid successive registrations, unlike a raw wall-clock value.
	user := &User{
		ID:          uuid.New(),
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Secret:      input.Secret,
	}

	// Persist the account collection first.
	if err := service.userRepository.Append(ctx, user); err != nil {
		return nil, apperr.Storage(err)
	}

	// Persist the redacted projection before activating it.
	projection := user.Project()
	if err := service.sessionRepository.Save(ctx, projection); err != nil {
		return nil, apperr.Storage(err)
	}

	// Storage succeeded; the in-memory state may now change.
	service.current = projection

	service.logger.Info("account registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return service.Current(), nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email  string
	Secret string
}

/*
Login validates credentials and activates the matching account's session.

Description: Succeeds iff an account exists whose email and secret both match
exactly. No distinction is surfaced between "no such email" and "wrong
secret" — there is no server boundary to protect, and a generic message
avoids account enumeration out of habit.

Parameters:
  - ctx: context.Context
  - input: LoginInput

Returns:
  - *Session: The now-active session projection
  - error: Unauthorized or storage errors
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {

	// Look up the account by email.
	user, err := service.userRepository.FindByEmail(ctx, input.Email)

	if err != nil {
		if apperr.IsCode(err, "NOT_FOUND") {
			return nil, apperr.Unauthorized("Invalid login credentials")
		}
		return nil, apperr.Storage(err)
	}

	// Verbatim secret comparison; see the package doc on the threat model.
	if user.Secret != input.Secret {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Persist the projection first, then activate it.
	projection := user.Project()
	if err := service.sessionRepository.Save(ctx, projection); err != nil {
		return nil, apperr.Storage(err)
	}

	service.current = projection

	service.logger.Info("login succeeded", slog.String("user_id", user.ID))

	return service.Current(), nil
}

/*
Logout clears the active session and removes its persisted projection.

Description: Always succeeds. A storage fault while clearing is logged and
swallowed: the user asked to be anonymous and the in-memory state honors
that; a stale persisted projection is re-cleared on the next logout.

Parameters:
  - ctx: context.Context
*/
func (service *Service) Logout(ctx context.Context) {
	if err := service.sessionRepository.Clear(ctx); err != nil {
		service.logger.Warn("failed to clear persisted session", slog.Any("error", err))
	}

	service.current = nil

	service.logger.Info("logged out")
}
