package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/websh/websh/internal/config"
	"github.com/websh/websh/internal/service"
	"github.com/websh/websh/internal/session"
	"github.com/websh/websh/internal/tui"
	"github.com/websh/websh/internal/vfs"
	"github.com/websh/websh/pkg/logging"
	"github.com/websh/websh/pkg/logging/slogpretty"
)

const configPath = "configs/config.yaml"

func main() {
	cfg := config.MustLoad(configPath)

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := setupLogger(cfg.Log, logFile)

	// Dependencies
	fs := vfs.New()
	registry := service.NewRegistry(fs)
	interp := service.NewInterpreter(fs, registry, service.NewParser())
	engine := service.NewAutocompleteEngine(fs, registry)
	sess := session.New(cfg.App.User, fs.Root())

	// Root context
	ctx := context.Background()
	ctx = logging.MakeContextWithLogger(ctx, logger)
	ctx = logging.MakeContextWithSessionID(ctx, sess.ID)

	logger.Info("shell starting",
		slog.String("user", cfg.App.User),
		slog.String("session_id", sess.ID),
	)

	program := tea.NewProgram(
		tui.NewModel(ctx, cfg.App.Host, fs, interp, engine, sess),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running shell:", err)
		os.Exit(1)
	}

	logger.Info("shell stopped", slog.String("session_id", sess.ID))
}

func setupLogger(cfg config.LogConfig, out io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	if cfg.Pretty {
		opts := slogpretty.PrettyHandlerOptions{
			SlogOpts: &slog.HandlerOptions{Level: level},
		}
		return slog.New(opts.NewPrettyHandler(out))
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
