// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

// builtinPosts is the fixed seed content always present in the listing.
//
// # Lifecycle
//
// Defined at process start, immutable, never persisted. Listing order is
// definition order; user-authored posts always follow these.
var builtinPosts = []Post{
	{
		ID:       "1",
		Title:    "The Future of Web Development: Trends to Watch in 2024",
		Content:  "Web development continues to evolve at a rapid pace, with new technologies and frameworks emerging regularly. In 2024, we're seeing exciting developments in areas like AI-powered development tools, improved performance optimization techniques, and more sophisticated user experience patterns. React continues to dominate the frontend landscape, while new meta-frameworks are making full-stack development more accessible than ever. The rise of edge computing is also changing how we think about deployment and performance, bringing computation closer to users for faster, more responsive applications.",
		Date:     "June 15, 2024",
		Image:    "photo-1498050108023-c5249f4df085",
		Category: "Technology",
		Slug:     "the-future-of-web-development-trends-to-watch-in-2024",
		ReadTime: 5,
	},
	{
		ID:       "2",
		Title:    "Building Responsive Designs: A Complete Guide",
		Content:  "Creating responsive web designs has become essential in today's multi-device world. With users accessing websites from smartphones, tablets, laptops, and desktop computers, ensuring your design works seamlessly across all screen sizes is crucial. This comprehensive guide covers everything from mobile-first design principles to advanced CSS Grid and Flexbox techniques. We'll explore how to use modern CSS features like container queries, which allow components to respond to their container size rather than just the viewport. You'll also learn about performance considerations for responsive images and how to implement proper touch targets for mobile users.",
		Date:     "June 10, 2024",
		Image:    "photo-1486312338219-ce68d2c6f44d",
		Category: "Design",
		Slug:     "building-responsive-designs-a-complete-guide",
		ReadTime: 8,
	},
	{
		ID:       "3",
		Title:    "JavaScript Performance Optimization Tips",
		Content:  "Performance optimization is crucial for creating fast, responsive web applications that provide excellent user experiences. Modern JavaScript applications can quickly become bloated and slow without proper optimization techniques. In this article, we'll explore various strategies including code splitting, lazy loading, tree shaking, and efficient DOM manipulation. We'll also discuss how to leverage browser APIs like the Intersection Observer for performance gains, implement proper caching strategies, and use tools like webpack and Vite for optimal bundling. Understanding these concepts will help you build applications that load quickly and run smoothly across all devices.",
		Date:     "June 5, 2024",
		Image:    "photo-1461749280684-dccba630e2f6",
		Category: "Programming",
		Slug:     "javascript-performance-optimization-tips",
		ReadTime: 6,
	},
}

// BuiltinPosts returns a fresh copy of the seed content in definition order.
// Callers can never mutate the seed through the returned slice.
func BuiltinPosts() []Post {
	posts := make([]Post, len(builtinPosts))
	copy(posts, builtinPosts)
	return posts
}

// SuggestedCategories is the pick list offered by the creation form.
// Free-form categories are still accepted by [Service.Create].
var SuggestedCategories = []string{
	"Technology", "Design", "Programming", "Lifestyle",
	"Travel", "Business", "Health", "Education",
}
