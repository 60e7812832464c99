// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
)

// PostRepository defines the data access contract for user-authored posts.
//
// # Review Process
//
// This interface is placed in a separate file from post.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is the key/value-backed repository in
// store_keyvalue.go. Built-in posts never pass through this interface.
type PostRepository interface {
	// All returns every user-authored post in creation (append) order.
	All(ctx context.Context) ([]Post, error)

	// Append persists a new post at the end of the collection.
	// Posts are append-only: there is no update or delete.
	Append(ctx context.Context, post *Post) error
}
