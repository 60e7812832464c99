// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hanashi/internal/content"
	"github.com/taibuivan/hanashi/internal/platform/apperr"
)

func TestEngagement_SeedsOnFirstAccess(t *testing.T) {
	engagement := content.NewEngagement()

	snapshot := engagement.Snapshot("post-1")

	assert.GreaterOrEqual(t, snapshot.Likes, 10)
	assert.LessOrEqual(t, snapshot.Likes, 59)
	assert.GreaterOrEqual(t, snapshot.Views, 100)
	assert.LessOrEqual(t, snapshot.Views, 599)
	assert.False(t, snapshot.Liked)
	assert.False(t, snapshot.Bookmarked)
	assert.Empty(t, snapshot.Comments)

	// Seeding happens once; repeated reads are stable.
	assert.Equal(t, snapshot, engagement.Snapshot("post-1"))
}

func TestEngagement_ToggleLike(t *testing.T) {
	engagement := content.NewEngagement()
	seeded := engagement.Snapshot("post-1")

	liked := engagement.ToggleLike("post-1")
	assert.True(t, liked.Liked)
	assert.Equal(t, seeded.Likes+1, liked.Likes)

	unliked := engagement.ToggleLike("post-1")
	assert.False(t, unliked.Liked)
	assert.Equal(t, seeded.Likes, unliked.Likes)
}

func TestEngagement_ToggleBookmark(t *testing.T) {
	engagement := content.NewEngagement()

	assert.True(t, engagement.ToggleBookmark("post-1").Bookmarked)
	assert.False(t, engagement.ToggleBookmark("post-1").Bookmarked)
}

func TestEngagement_AddComment(t *testing.T) {
	engagement := content.NewEngagement()

	first, err := engagement.AddComment("post-1", "ada", "great read")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := engagement.AddComment("post-1", "grace", "agreed")
	require.NoError(t, err)

	// Newest first.
	comments := engagement.Snapshot("post-1").Comments
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
}

func TestEngagement_AddComment_Validation(t *testing.T) {
	engagement := content.NewEngagement()

	tests := []struct {
		name    string
		author  string
		message string
	}{
		{"empty_author", "", "text"},
		{"empty_message", "ada", ""},
		{"whitespace_only", " ", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engagement.AddComment("post-1", tt.author, tt.message)
			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
		})
	}

	assert.Empty(t, engagement.Snapshot("post-1").Comments)
}
