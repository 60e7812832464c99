// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/hanashi/internal/platform/apperr"
	"github.com/taibuivan/hanashi/internal/platform/constants"
	"github.com/taibuivan/hanashi/internal/platform/validate"
	"github.com/taibuivan/hanashi/pkg/slice"
	"github.com/taibuivan/hanashi/pkg/slug"
	"github.com/taibuivan/hanashi/pkg/uuid"
)

// Service implements the Content Store: it maintains the full visible post
// set (built-in ∪ user-authored) and accepts new user-authored posts.
//
// # Ordering Contract
//
// ListAll returns built-ins in definition order followed by user-authored
// posts in creation order. The filter layer depends on this ordering being
// stable and restartable.
//
// # Atomicity
//
// Create appends to storage first and to the in-memory list second, mirroring
// the session service: a storage fault never leaves a phantom post visible.
type Service struct {
	postRepository PostRepository
	logger         *slog.Logger

	// now is a clock seam so tests can pin the creation-date display string.
	now func() time.Time

	// userPosts mirrors the persisted collection, oldest first.
	userPosts []Post
}

// NewService constructs a new content [Service] with necessary dependencies.
func NewService(postRepo PostRepository, logger *slog.Logger) *Service {
	return &Service{
		postRepository: postRepo,
		logger:         logger,
		now:            time.Now,
	}
}

/*
Initialize loads the persisted user-authored post collection.

Description: Called once at process start. A malformed or absent collection
reads as empty; only a real storage fault is surfaced.

Parameters:
  - ctx: context.Context

Returns:
  - error: Storage read failures
*/
func (service *Service) Initialize(ctx context.Context) error {
	posts, err := service.postRepository.All(ctx)
	if err != nil {
		return apperr.Storage(err)
	}

	service.userPosts = posts

	service.logger.Info("content loaded",
		slog.Int("builtin_posts", len(builtinPosts)),
		slog.Int("user_posts", len(posts)),
	)

	return nil
}

/*
ListAll returns the full visible post set.

Description: Built-in posts in definition order, then user-authored posts in
creation order (oldest first). Calling twice with no intervening create
yields an identical sequence.

Returns:
  - []Post: The combined listing, by value
*/
func (service *Service) ListAll() []Post {
	posts := BuiltinPosts()
	posts = append(posts, service.userPosts...)
	return posts
}

// # Creation Flow

// CreateInput holds the data required to publish a new story.
type CreateInput struct {
	Title    string
	Content  string
	Category string
	Image    string

	// Authorship is attributed by the caller from the active session.
	AuthorID   string
	AuthorName string
}

/*
Create validates and persists a new user-authored post.

Description: Title and content must be non-empty after trimming. Reading time
is derived from the body. Empty category and image fall back to their
defaults. The post is appended to storage first and becomes visible in
ListAll only after the write succeeds.

Parameters:
  - ctx: context.Context
  - input: CreateInput

Returns:
  - *Post: The created post
  - error: Validation or storage errors
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Post, error) {

	// Reject empty or whitespace-only title and body before touching storage.
	v := &validate.Validator{}
	if err := v.
		Required("title", input.Title).
		Required("content", input.Content).
		Err(); err != nil {
		return nil, err
	}

	// Substitute defaults for empty optional fields.
	category := input.Category
	if category == "" {
		category = constants.DefaultCategory
	}

	image := input.Image
	if image == "" {
		image = constants.DefaultCoverImage
	}

	// Construct the new Post entity. Time-sortable ID, same discipline as accounts.
	post := &Post{
		ID:         uuid.New(),
		Title:      input.Title,
		Content:    input.Content,
		Date:       service.now().Format(constants.DateLayout),
		Image:      image,
		Category:   category,
		Slug:       slug.From(input.Title),
		ReadTime:   EstimateReadTime(input.Content),
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
	}

	// Persist first; the in-memory mirror changes only after success.
	if err := service.postRepository.Append(ctx, post); err != nil {
		return nil, apperr.Storage(err)
	}

	service.userPosts = append(service.userPosts, *post)

	service.logger.Info("post published",
		slog.String("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.String("category", post.Category),
	)

	created := *post
	return &created, nil
}

// EstimateReadTime derives whole reading minutes from a post body.
//
// # Model
//
// Ceiling of word count over [constants.WordsPerMinute], floored at
// [constants.MinReadMinutes] so short posts never show "0 min read".
func EstimateReadTime(body string) int {
	words := len(strings.Fields(body))

	minutes := (words + constants.WordsPerMinute - 1) / constants.WordsPerMinute
	if minutes < constants.MinReadMinutes {
		minutes = constants.MinReadMinutes
	}

	return minutes
}

// # Listing Queries

/*
Filter keeps the posts matching a search term and a category.

Description: Pure function, no storage access. A post is kept iff the term is
empty or appears case-insensitively in its title or content, AND the category
is the "All" sentinel or matches exactly. Input ordering is preserved.

Parameters:
  - posts: []Post
  - term: string (search term, may be empty)
  - category: string (exact label or the "All" sentinel)

Returns:
  - []Post: The matching posts, in input order
*/
func Filter(posts []Post, term, category string) []Post {
	needle := strings.ToLower(term)

	return slice.Filter(posts, func(post Post) bool {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(post.Title), needle) ||
			strings.Contains(strings.ToLower(post.Content), needle)

		matchesCategory := category == constants.AllCategories ||
			post.Category == category

		return matchesSearch && matchesCategory
	})
}

/*
DistinctCategories lists the category labels present in a post set.

Description: The "All" sentinel first, then each category exactly once in
first-occurrence order.

Parameters:
  - posts: []Post

Returns:
  - []string: Ordered category labels
*/
func DistinctCategories(posts []Post) []string {
	categories := []string{constants.AllCategories}
	seen := make(map[string]bool, len(posts))

	for _, post := range posts {
		if seen[post.Category] {
			continue
		}
		seen[post.Category] = true
		categories = append(categories, post.Category)
	}

	return categories
}
