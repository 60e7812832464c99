// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/hanashi/internal/content"
	"github.com/taibuivan/hanashi/internal/platform/apperr"
	"github.com/taibuivan/hanashi/internal/platform/constants"
	"github.com/taibuivan/hanashi/internal/session"
)

// # Input Helpers

// ask prompts for a single line and returns it trimmed.
func (c *CLI) ask(label string) (string, error) {
	c.rl.SetPrompt(label + ": ")
	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askSecret prompts for a line without echoing it.
func (c *CLI) askSecret(label string) (string, error) {
	secret, err := c.rl.ReadPassword(label + ": ")
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// askMultiline reads lines until the user enters a single "." on its own line.
func (c *CLI) askMultiline(label string) (string, error) {
	fmt.Printf("%s (finish with a single '.' line):\n", label)

	var lines []string
	for {
		c.rl.SetPrompt("| ")
		line, err := c.rl.Readline()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

// report prints a store outcome in user terms, distinguishing recoverable
// business failures from storage faults.
func report(err error) {
	ae := apperr.As(err)
	if ae == nil {
		fmt.Println("error:", err)
		return
	}

	switch ae.Code {
	case "STORAGE_ERROR":
		fmt.Println("Storage is unavailable; nothing was saved. Please try again.")
	case "VALIDATION_ERROR":
		fmt.Println(ae.Message)
		for _, detail := range ae.Details {
			fmt.Printf("  - %s: %s\n", detail.Field, detail.Message)
		}
	default:
		fmt.Println(ae.Message)
	}
}

// requireSession returns the active session or prints the sign-in hint.
func (c *CLI) requireSession() *session.Session {
	active := c.sessions.Current()
	if active == nil {
		fmt.Println("You need to sign in first (try 'login' or 'register').")
	}
	return active
}

// pickPost resolves a 1-based listing index argument against the last render.
func (c *CLI) pickPost(args []string) (*content.Post, bool) {
	if len(c.lastListing) == 0 {
		c.lastListing = c.contents.ListAll()
	}

	if len(args) == 0 {
		fmt.Println("Which story? Give its number from the listing.")
		return nil, false
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(c.lastListing) {
		fmt.Printf("No story numbered %q; run 'list' to see the numbering.\n", args[0])
		return nil, false
	}

	post := c.lastListing[n-1]
	return &post, true
}

// # Identity Commands

func (c *CLI) handleRegister(ctx context.Context) error {
	name, err := c.ask("Username")
	if err != nil {
		return err
	}
	email, err := c.ask("Email")
	if err != nil {
		return err
	}
	secret, err := c.askSecret("Password")
	if err != nil {
		return err
	}

	active, err := c.sessions.Register(ctx, session.RegisterInput{
		DisplayName: name,
		Email:       email,
		Secret:      secret,
	})
	if err != nil {
		report(err)
		return nil
	}

	fmt.Printf("Welcome, %s! You are signed in.\n", active.DisplayName)
	return nil
}

func (c *CLI) handleLogin(ctx context.Context) error {
	email, err := c.ask("Email")
	if err != nil {
		return err
	}
	secret, err := c.askSecret("Password")
	if err != nil {
		return err
	}

	active, err := c.sessions.Login(ctx, session.LoginInput{Email: email, Secret: secret})
	if err != nil {
		report(err)
		return nil
	}

	fmt.Printf("Welcome back, %s!\n", active.DisplayName)
	return nil
}

func (c *CLI) handleLogout(ctx context.Context) error {
	c.sessions.Logout(ctx)
	fmt.Println("Signed out.")
	return nil
}

func (c *CLI) handleWhoami() error {
	active := c.sessions.Current()
	if active == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", active.DisplayName, active.Email)
	return nil
}

// # Listing Commands

func (c *CLI) handleList() error {
	c.searchTerm = ""
	c.category = constants.AllCategories
	c.render()
	return nil
}

func (c *CLI) handleSearch(args []string) error {
	c.searchTerm = strings.Join(args, " ")
	c.render()
	return nil
}

func (c *CLI) handleCategories(args []string) error {
	if len(args) == 0 {
		for _, name := range content.DistinctCategories(c.contents.ListAll()) {
			fmt.Println(" ", name)
		}
		return nil
	}

	c.category = strings.Join(args, " ")
	c.render()
	return nil
}

// render filters the full listing through the current search state and
// prints it, caching the sequence for numeric arguments.
func (c *CLI) render() {
	filtered := content.Filter(c.contents.ListAll(), c.searchTerm, c.category)
	c.lastListing = filtered

	if len(filtered) == 0 {
		fmt.Println("No stories found matching your criteria.")
		return
	}

	if c.searchTerm != "" || c.category != constants.AllCategories {
		fmt.Printf("Found %d stories", len(filtered))
		if c.searchTerm != "" {
			fmt.Printf(" matching %q", c.searchTerm)
		}
		if c.category != constants.AllCategories {
			fmt.Printf(" in %s", c.category)
		}
		fmt.Println()
	}

	for i, post := range filtered {
		byline := ""
		if post.AuthorName != "" {
			byline = " — by " + post.AuthorName
		}
		fmt.Printf("%2d. [%s] %s (%s, %s)%s\n",
			i+1, post.Category, post.Title, post.Date, post.DisplayReadTime(), byline)
	}
}

func (c *CLI) handleRead(args []string) error {
	post, ok := c.pickPost(args)
	if !ok {
		return nil
	}

	snapshot := c.engagement.Snapshot(post.ID)

	fmt.Println(strings.ToUpper(post.Title))
	fmt.Printf("%s · %s · %d views · %d likes\n", post.Date, post.DisplayReadTime(), snapshot.Views, snapshot.Likes)
	fmt.Println(post.CoverURL())
	fmt.Println()
	fmt.Println(post.Content)

	if len(snapshot.Comments) > 0 {
		fmt.Printf("\nComments (%d):\n", len(snapshot.Comments))
		for _, comment := range snapshot.Comments {
			fmt.Printf("  %s (%s): %s\n", comment.Name, comment.Date, comment.Message)
		}
	}
	return nil
}

func (c *CLI) handleStats() error {
	posts := c.contents.ListAll()
	categories := content.DistinctCategories(posts)

	totalMinutes := 0
	for _, post := range posts {
		totalMinutes += post.ReadTime
	}
	average := 0
	if len(posts) > 0 {
		average = totalMinutes / len(posts)
	}

	fmt.Printf("%d total stories · %d categories · %d min avg. read time\n",
		len(posts), len(categories)-1, average)
	return nil
}

// # Publishing Commands

func (c *CLI) handleCreate(ctx context.Context) error {
	author := c.requireSession()
	if author == nil {
		return nil
	}

	title, err := c.ask("Title")
	if err != nil {
		return err
	}
	category, err := c.ask("Category (empty for General)")
	if err != nil {
		return err
	}
	image, err := c.ask("Cover image Unsplash ID (empty for default)")
	if err != nil {
		return err
	}
	body, err := c.askMultiline("Content")
	if err != nil {
		return err
	}

	post, err := c.contents.Create(ctx, content.CreateInput{
		Title:      title,
		Content:    body,
		Category:   category,
		Image:      image,
		AuthorID:   author.ID,
		AuthorName: author.DisplayName,
	})
	if err != nil {
		report(err)
		return nil
	}

	fmt.Printf("Published %q (%s).\n", post.Title, post.DisplayReadTime())

	// Re-render so the new story is visible immediately.
	return c.handleList()
}

// # Engagement Commands

func (c *CLI) handleLike(args []string) error {
	if c.requireSession() == nil {
		return nil
	}
	post, ok := c.pickPost(args)
	if !ok {
		return nil
	}

	state := c.engagement.ToggleLike(post.ID)
	if state.Liked {
		fmt.Printf("Liked %q (%d likes).\n", post.Title, state.Likes)
	} else {
		fmt.Printf("Unliked %q (%d likes).\n", post.Title, state.Likes)
	}
	return nil
}

func (c *CLI) handleBookmark(args []string) error {
	if c.requireSession() == nil {
		return nil
	}
	post, ok := c.pickPost(args)
	if !ok {
		return nil
	}

	state := c.engagement.ToggleBookmark(post.ID)
	if state.Bookmarked {
		fmt.Printf("Bookmarked %q.\n", post.Title)
	} else {
		fmt.Printf("Removed bookmark on %q.\n", post.Title)
	}
	return nil
}

func (c *CLI) handleComment(args []string) error {
	author := c.requireSession()
	if author == nil {
		return nil
	}
	post, ok := c.pickPost(args)
	if !ok {
		return nil
	}

	message, err := c.ask("Comment")
	if err != nil {
		return err
	}

	if _, err := c.engagement.AddComment(post.ID, author.DisplayName, message); err != nil {
		report(err)
		return nil
	}

	fmt.Printf("Comment added to %q.\n", post.Title)
	return nil
}
