// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines the persisted key layout, content defaults, and cross-cutting values
that are shared between different layers of the system.

Categories:

  - Storage Keys: The string keys of the local key/value medium.
  - Content Defaults: Sentinels substituted when a creator leaves a field empty.
  - Reading Time: The words-per-minute model behind the read-time estimate.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

// # Metadata

const (
	AppName    = "hanashi"
	AppVersion = "0.1.0-dev"
)

// # Storage Keys

const (
	// KeySession holds the persisted projection of the active session.
	KeySession = "user"

	// KeyUsers holds the ordered collection of registered accounts.
	KeyUsers = "users"

	// KeyUserPosts holds the ordered collection of user-authored posts.
	KeyUserPosts = "userPosts"
)

// # Content Defaults

const (
	// DefaultCategory is substituted when a creator publishes without a category.
	DefaultCategory = "General"

	// AllCategories is the sentinel that disables category filtering.
	AllCategories = "All"

	// DefaultCoverImage is the Unsplash photo ID substituted when no cover is given.
	DefaultCoverImage = "photo-1486312338219-ce68d2c6f44d"

	// DateLayout is the human-readable display format for post creation dates.
	DateLayout = "January 2, 2006"
)

// # Reading Time

const (
	// WordsPerMinute is the assumed reading speed behind the read-time estimate.
	WordsPerMinute = 200

	// MinReadMinutes is the floor of the estimate so short posts never show "0 min".
	MinReadMinutes = 1
)
