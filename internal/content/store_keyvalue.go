// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/hanashi/internal/platform/constants"
	"github.com/taibuivan/hanashi/internal/platform/keyvalue"
)

// KeyValuePostRepository implements [PostRepository] on the key/value store.
//
// The user-authored collection lives under one key as a JSON array, read and
// rewritten whole on every append.
type KeyValuePostRepository struct {
	store  keyvalue.Store
	logger *slog.Logger
}

// NewPostRepository creates a key/value-backed implementation of [PostRepository].
func NewPostRepository(store keyvalue.Store, logger *slog.Logger) *KeyValuePostRepository {
	return &KeyValuePostRepository{store: store, logger: logger}
}

/*
All returns every user-authored post in creation order.

Description: Schema-on-read decode of the persisted array. An absent key or a
blob that does not decode to the expected shape reads as an empty collection,
logged as a non-fatal anomaly.

Parameters:
  - ctx: context.Context

Returns:
  - []Post: User-authored posts, oldest first
  - error: Storage read failures
*/
func (repository *KeyValuePostRepository) All(ctx context.Context) ([]Post, error) {
	blob, err := repository.store.Get(ctx, constants.KeyUserPosts)

	if err != nil {
		if errors.Is(err, keyvalue.ErrNotFound) {
			return []Post{}, nil
		}
		return nil, fmt.Errorf("keyvalue_post_repo_read_failed: %w", err)
	}

	var posts []Post
	if err := json.Unmarshal(blob, &posts); err != nil {
		repository.logger.Warn("discarding malformed post collection",
			slog.String("key", constants.KeyUserPosts),
			slog.Any("error", err),
		)
		return []Post{}, nil
	}

	return posts, nil
}

/*
Append persists a new post at the end of the collection.

Parameters:
  - ctx: context.Context
  - post: *Post (Entity to persist)

Returns:
  - error: Storage write failures
*/
func (repository *KeyValuePostRepository) Append(ctx context.Context, post *Post) error {
	posts, err := repository.All(ctx)
	if err != nil {
		return err
	}

	posts = append(posts, *post)

	blob, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("keyvalue_post_repo_encode_failed: %w", err)
	}

	if err := repository.store.Set(ctx, constants.KeyUserPosts, blob); err != nil {
		return fmt.Errorf("keyvalue_post_repo_append_failed: %w", err)
	}

	return nil
}
