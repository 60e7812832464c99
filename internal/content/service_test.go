// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hanashi/internal/content"
	"github.com/taibuivan/hanashi/internal/platform/apperr"
	"github.com/taibuivan/hanashi/internal/platform/keyvalue"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newService builds a content service over a fresh in-memory store.
func newService(t *testing.T) (*content.Service, *keyvalue.MemoryStore) {
	t.Helper()

	store := keyvalue.NewMemoryStore()
	service := content.NewService(content.NewPostRepository(store, discard()), discard())
	require.NoError(t, service.Initialize(context.Background()))
	return service, store
}

// words returns a body with exactly n space-separated words.
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestService_Create_Validation(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		body    string
		wantErr bool
	}{
		{"valid", "T", "x", false},
		{"empty_title", "", "x", true},
		{"empty_body", "T", "", true},
		{"whitespace_only", " ", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, content.CreateInput{Title: tt.title, Content: tt.body})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_Create_Defaults(t *testing.T) {
	service, _ := newService(t)

	post, err := service.Create(context.Background(), content.CreateInput{
		Title:      "Untitled Thoughts",
		Content:    "just a few words",
		AuthorID:   "u-1",
		AuthorName: "ada",
	})
	require.NoError(t, err)

	assert.Equal(t, "General", post.Category)
	assert.Equal(t, "photo-1486312338219-ce68d2c6f44d", post.Image)
	assert.Equal(t, "untitled-thoughts", post.Slug)
	assert.Equal(t, "u-1", post.AuthorID)
	assert.Equal(t, "ada", post.AuthorName)
	assert.NotEmpty(t, post.Date)
}

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"one_word", words(1), 1},
		{"exactly_200", words(200), 1},
		{"just_over_200", words(201), 2},
		{"four_hundred", words(400), 2},
		{"long_read", words(1000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.EstimateReadTime(tt.body))
		})
	}
}

func TestService_ListAll_Ordering(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	builtins := content.BuiltinPosts()

	first, err := service.Create(ctx, content.CreateInput{Title: "First", Content: "a"})
	require.NoError(t, err)
	second, err := service.Create(ctx, content.CreateInput{Title: "Second", Content: "b"})
	require.NoError(t, err)

	listing := service.ListAll()
	require.Len(t, listing, len(builtins)+2)

	// Built-ins first, in definition order.
	for i, builtin := range builtins {
		assert.Equal(t, builtin.ID, listing[i].ID)
	}

	// Then user posts in creation order (oldest first).
	assert.Equal(t, first.ID, listing[len(builtins)].ID)
	assert.Equal(t, second.ID, listing[len(builtins)+1].ID)

	// Idempotent between creates.
	assert.Equal(t, listing, service.ListAll())
}

func TestService_PostsSurviveRestart(t *testing.T) {
	service, store := newService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, content.CreateInput{Title: "Kept", Content: "x"})
	require.NoError(t, err)

	// Simulate a restart: a fresh service over the same storage.
	restarted := content.NewService(content.NewPostRepository(store, discard()), discard())
	require.NoError(t, restarted.Initialize(ctx))

	listing := restarted.ListAll()
	assert.Equal(t, created.ID, listing[len(listing)-1].ID)
}

func TestService_Create_StorageFault(t *testing.T) {
	service, store := newService(t)
	ctx := context.Background()

	before := service.ListAll()
	store.FailNextWrite(errors.New("disk full"))

	_, err := service.Create(ctx, content.CreateInput{Title: "Lost", Content: "x"})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "STORAGE_ERROR"))

	// No phantom post appears after a failed write.
	assert.Equal(t, before, service.ListAll())
}

func TestFilter(t *testing.T) {
	posts := []content.Post{
		{ID: "1", Title: "JavaScript Performance", Content: "speed", Category: "Programming"},
		{ID: "2", Title: "Design Systems", Content: "tokens and javascript tooling", Category: "Design"},
		{ID: "3", Title: "Slow Travel", Content: "trains", Category: "Travel"},
	}

	t.Run("identity_case", func(t *testing.T) {
		assert.Equal(t, posts, content.Filter(posts, "", "All"))
	})

	t.Run("case_insensitive_term", func(t *testing.T) {
		got := content.Filter(posts, "javascript", "All")
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
	})

	t.Run("term_and_category", func(t *testing.T) {
		got := content.Filter(posts, "javascript", "Design")
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("category_exact_match", func(t *testing.T) {
		assert.Empty(t, content.Filter(posts, "", "design"))
	})

	t.Run("no_match", func(t *testing.T) {
		assert.Empty(t, content.Filter(posts, "rust", "All"))
	})
}

func TestDistinctCategories(t *testing.T) {
	posts := []content.Post{
		{Category: "Design"},
		{Category: "Tech"},
		{Category: "Design"},
	}

	assert.Equal(t, []string{"All", "Design", "Tech"}, content.DistinctCategories(posts))
}

func TestDistinctCategories_Empty(t *testing.T) {
	assert.Equal(t, []string{"All"}, content.DistinctCategories(nil))
}
