// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements the interactive front end of Hanashi.

It plays the role of the rendering layer: routing between the anonymous and
authenticated views, gating the creation flow behind an active session, and
re-rendering the listing after every store mutation. All business rules live
in the session and content services; this package only reads, dispatches,
and prints.

Architecture:

  - CLI: Owns the readline instance and the store handles.
  - Dispatch: One REPL cycle reads a line, assigns a command ID, and routes
    to a handler in commands.go.
  - State: The last rendered listing is cached so numeric arguments
    (like 3, read 2) resolve against what the user last saw.
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/taibuivan/hanashi/internal/content"
	"github.com/taibuivan/hanashi/internal/platform/constants"
	"github.com/taibuivan/hanashi/internal/platform/ctxutil"
	"github.com/taibuivan/hanashi/internal/session"
	"github.com/taibuivan/hanashi/pkg/uuid"
)

// ErrExit is returned by Run when the user asks to leave the program.
var ErrExit = errors.New("cli: exit requested")

// CLI drives the read–eval–print loop over the session and content stores.
type CLI struct {
	sessions   *session.Service
	contents   *content.Service
	engagement *content.Engagement

	rl     *readline.Instance
	logger *slog.Logger

	// search state mirrored from the listing view.
	searchTerm string
	category   string

	// lastListing is the post sequence the user last saw, so numeric
	// command arguments stay stable between renders.
	lastListing []content.Post
}

// New constructs the front end around an established readline instance.
func New(
	sessions *session.Service,
	contents *content.Service,
	engagement *content.Engagement,
	rl *readline.Instance,
	logger *slog.Logger,
) *CLI {
	return &CLI{
		sessions:   sessions,
		contents:   contents,
		engagement: engagement,
		rl:         rl,
		logger:     logger,
		category:   constants.AllCategories,
	}
}

// Run executes REPL cycles until EOF, interrupt, or an exit command.
func (c *CLI) Run(ctx context.Context) error {
	for {
		c.rl.SetPrompt(c.prompt())

		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// One command ID per cycle so log lines correlate to a user action.
		cmdCtx := ctxutil.WithCommandID(ctx, uuid.New())
		cmdCtx = ctxutil.WithLogger(cmdCtx, c.logger.With(
			slog.String("command_id", ctxutil.GetCommandID(cmdCtx)),
		))

		if err := c.dispatch(cmdCtx, strings.Fields(line)); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			// Handlers surface their own messages; anything reaching here
			// is unexpected.
			fmt.Println("error:", err)
		}
	}
}

// prompt renders the identity-aware REPL prompt.
func (c *CLI) prompt() string {
	if active := c.sessions.Current(); active != nil {
		return fmt.Sprintf("hanashi (%s)> ", active.DisplayName)
	}
	return "hanashi> "
}

// dispatch routes one parsed command line to its handler.
func (c *CLI) dispatch(ctx context.Context, args []string) error {
	command, rest := args[0], args[1:]

	switch command {
	case "help":
		c.printHelp()
		return nil
	case "exit", "quit":
		fmt.Println("Bye.")
		return ErrExit
	case "register":
		return c.handleRegister(ctx)
	case "login":
		return c.handleLogin(ctx)
	case "logout":
		return c.handleLogout(ctx)
	case "whoami":
		return c.handleWhoami()
	case "list":
		return c.handleList()
	case "search":
		return c.handleSearch(rest)
	case "categories":
		return c.handleCategories(rest)
	case "create":
		return c.handleCreate(ctx)
	case "read":
		return c.handleRead(rest)
	case "like":
		return c.handleLike(rest)
	case "bookmark":
		return c.handleBookmark(rest)
	case "comment":
		return c.handleComment(rest)
	case "stats":
		return c.handleStats()
	default:
		fmt.Printf("Unknown command: %s (try 'help')\n", command)
		return nil
	}
}

// printHelp lists the commands available in the current state.
func (c *CLI) printHelp() {
	if c.sessions.Current() == nil {
		fmt.Println("Available commands: register, login, list, search, categories, read, help, exit")
		fmt.Println("Sign in to publish stories and interact with them.")
		return
	}
	fmt.Println("Available commands:")
	fmt.Println("  list                      show all stories")
	fmt.Println("  search <term>             filter stories by term")
	fmt.Println("  categories [name]         list categories / filter by one")
	fmt.Println("  read <n>                  read story n from the last listing")
	fmt.Println("  create                    publish a new story")
	fmt.Println("  like <n>                  toggle like on story n")
	fmt.Println("  bookmark <n>              toggle bookmark on story n")
	fmt.Println("  comment <n>               comment on story n")
	fmt.Println("  stats                     listing totals")
	fmt.Println("  whoami, logout, exit")
}
