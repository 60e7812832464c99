// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package content defines the post entities and rules of Hanashi.
//
// # Architecture
//
// The visible post set is the union of a fixed built-in seed and the
// user-authored collection. Built-ins are immutable and never persisted;
// user-authored posts are append-only once created.
package content

import (
	"fmt"
)

// Post represents a single published story.
//
// # Rules
//   - ID is unique within the combined built-in and user-authored set.
//   - Date is a display string, not a timestamp: it is what readers see.
//   - ReadTime is whole minutes, derived from the body at creation.
//   - Posts are never edited or deleted once published.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Slug     string `json:"slug,omitempty"`
	ReadTime int    `json:"readTime"`

	// Authorship is empty on built-in posts.
	AuthorID   string `json:"authorId,omitempty"`
	AuthorName string `json:"authorName,omitempty"`
}

// DisplayReadTime renders the estimate the way the listing shows it.
func (p Post) DisplayReadTime() string {
	return fmt.Sprintf("%d min read", p.ReadTime)
}

// CoverURL returns the full Unsplash URL for the post's cover image.
func (p Post) CoverURL() string {
	return fmt.Sprintf("https://images.unsplash.com/%s?w=800&h=400&fit=crop", p.Image)
}
