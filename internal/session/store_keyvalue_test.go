// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hanashi/internal/platform/apperr"
	"github.com/taibuivan/hanashi/internal/platform/constants"
	"github.com/taibuivan/hanashi/internal/platform/keyvalue"
	"github.com/taibuivan/hanashi/internal/session"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserRepository_SchemaOnRead(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		blob []byte
	}{
		{"absent_key", nil},
		{"not_json", []byte("!!garbage!!")},
		{"wrong_shape", []byte(`{"unexpected":"object"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := keyvalue.NewMemoryStore()
			if tt.blob != nil {
				require.NoError(t, store.Set(ctx, constants.KeyUsers, tt.blob))
			}

			repo := session.NewUserRepository(store, discard())

			// Malformed persisted data reads as an empty collection, never a fault.
			users, err := repo.All(ctx)
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}
}

func TestUserRepository_AppendAndFind(t *testing.T) {
	ctx := context.Background()
	store := keyvalue.NewMemoryStore()
	repo := session.NewUserRepository(store, discard())

	user := &session.User{ID: "u-1", DisplayName: "ada", Email: "ada@example.com", Secret: "pw"}
	require.NoError(t, repo.Append(ctx, user))

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.ID)
	assert.Equal(t, "pw", found.Secret)

	// The lookup is case-sensitive and exact.
	_, err = repo.FindByEmail(ctx, "Ada@example.com")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := keyvalue.NewMemoryStore()
	repo := session.NewSessionRepository(store, discard())

	// Nothing persisted yet.
	_, err := repo.Load(ctx)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))

	// Save, reload, verify the projection round-trips without the secret.
	saved := &session.Session{ID: "u-1", DisplayName: "ada", Email: "ada@example.com"}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// Clear is idempotent.
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	_, err = repo.Load(ctx)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
}

func TestSessionRepository_MalformedProjection(t *testing.T) {
	ctx := context.Background()
	store := keyvalue.NewMemoryStore()
	require.NoError(t, store.Set(ctx, constants.KeySession, []byte("not-a-session")))

	repo := session.NewSessionRepository(store, discard())

	// A broken blob reads as "no session" rather than failing startup.
	_, err := repo.Load(ctx)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "NOT_FOUND"))
}

func TestUser_ProjectExcludesSecret(t *testing.T) {
	user := session.User{ID: "u-1", DisplayName: "ada", Email: "ada@example.com", Secret: "pw"}

	projection := user.Project()
	assert.Equal(t, &session.Session{ID: "u-1", DisplayName: "ada", Email: "ada@example.com"}, projection)
}
