// Copyright (c) 2026 Hanashi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command hanashi is the entry point for the Hanashi story platform.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the SQLite-backed key/value store.
//  4. Wire repositories and services.
//  5. Restore persisted state (session, user posts).
//  6. Run the interactive front end until exit.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/taibuivan/hanashi/internal/cli"
	"github.com/taibuivan/hanashi/internal/content"
	"github.com/taibuivan/hanashi/internal/platform/config"
	"github.com/taibuivan/hanashi/internal/platform/constants"
	"github.com/taibuivan/hanashi/internal/platform/keyvalue"
	"github.com/taibuivan/hanashi/internal/session"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Logs go to stderr so they never interleave with the REPL on stdout.
	rawLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	ctx := context.Background()

	// ── 3. Storage ────────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DataPath); cfg.DataPath != ":memory:" && dir != "." {
		must(log, os.MkdirAll(dir, 0o755), "create data directory")
	}

	store, err := keyvalue.OpenSQLite(ctx, cfg.DataPath, log)
	must(log, err, "open keyvalue store")
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Error("keyvalue close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	userRepository := session.NewUserRepository(store, log)
	sessionRepository := session.NewSessionRepository(store, log)
	sessionService := session.NewService(userRepository, sessionRepository, log)

	postRepository := content.NewPostRepository(store, log)
	contentService := content.NewService(postRepository, log)
	engagement := content.NewEngagement()

	// ── 5. Restore persisted state ────────────────────────────────────────
	sessionService.Initialize(ctx)
	must(log, contentService.Initialize(ctx), "load content")

	// ── 6. Front End ──────────────────────────────────────────────────────
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "hanashi> ",
		HistoryFile:     cfg.HistoryPath,
		InterruptPrompt: "^C",
	})
	must(log, err, "initialize readline")
	defer rl.Close()

	front := cli.New(sessionService, contentService, engagement, rl, log)
	if err := front.Run(ctx); err != nil {
		log.Error("front end error", slog.Any("error", err))
		os.Exit(1)
	}
}

// must aborts startup with a structured log entry when a step fails.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failed", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}
