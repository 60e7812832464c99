// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"math/rand"
	"time"

	"github.com/taibuivan/hanashi/internal/platform/constants"
	"github.com/taibuivan/hanashi/internal/platform/validate"
	"github.com/taibuivan/hanashi/pkg/uuid"
)

// Comment is a single reader comment on a post.
type Comment struct {
	ID      string
	Name    string
	Message string
	Date    string
}

// PostEngagement is the per-post interaction state shown next to a story.
type PostEngagement struct {
	Likes      int
	Views      int
	Liked      bool
	Bookmarked bool

	// Comments are ordered newest first.
	Comments []Comment
}

// Engagement tracks likes, views, bookmarks, and comments per post.
//
// # Lifetime
//
// Deliberately in-memory only: interaction state lives as long as the
// process, matching the ephemeral per-card state of the original front end.
// Counts are seeded with plausible random values on first access.
type Engagement struct {
	byPost map[string]*PostEngagement

	// rng is seeded per instance so tests can inject a deterministic source.
	rng *rand.Rand

	// now is a clock seam for comment date strings.
	now func() time.Time
}

// NewEngagement returns an empty engagement ledger.
func NewEngagement() *Engagement {
	return &Engagement{
		byPost: make(map[string]*PostEngagement),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// Snapshot returns a copy of the engagement state for a post,
// seeding it on first access.
func (e *Engagement) Snapshot(postID string) PostEngagement {
	state := e.state(postID)

	copied := *state
	copied.Comments = make([]Comment, len(state.Comments))
	copy(copied.Comments, state.Comments)
	return copied
}

// ToggleLike flips the reader's like on a post and adjusts the count.
func (e *Engagement) ToggleLike(postID string) PostEngagement {
	state := e.state(postID)

	if state.Liked {
		state.Likes--
	} else {
		state.Likes++
	}
	state.Liked = !state.Liked

	return e.Snapshot(postID)
}

// ToggleBookmark flips the reader's bookmark on a post.
func (e *Engagement) ToggleBookmark(postID string) PostEngagement {
	state := e.state(postID)
	state.Bookmarked = !state.Bookmarked
	return e.Snapshot(postID)
}

/*
AddComment prepends a reader comment to a post.

Description: Name and message must both be non-empty after trimming.
Comments are kept newest first.

Parameters:
  - postID: string
  - name: string
  - message: string

Returns:
  - *Comment: The stored comment
  - error: Validation failures
*/
func (e *Engagement) AddComment(postID, name, message string) (*Comment, error) {
	v := &validate.Validator{}
	if err := v.
		Required("name", name).
		Required("message", message).
		Err(); err != nil {
		return nil, err
	}

	comment := Comment{
		ID:      uuid.New(),
		Name:    name,
		Message: message,
		Date:    e.now().Format(constants.DateLayout),
	}

	state := e.state(postID)
	state.Comments = append([]Comment{comment}, state.Comments...)

	return &comment, nil
}

// state returns the live per-post record, seeding counts on first access.
func (e *Engagement) state(postID string) *PostEngagement {
	if existing, ok := e.byPost[postID]; ok {
		return existing
	}

	seeded := &PostEngagement{
		Likes: e.rng.Intn(50) + 10,   // [10, 59]
		Views: e.rng.Intn(500) + 100, // [100, 599]
	}
	e.byPost[postID] = seeded
	return seeded
}
