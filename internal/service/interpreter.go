package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/websh/websh/internal/models"
	"github.com/websh/websh/internal/session"
	"github.com/websh/websh/internal/vfs"
	"github.com/websh/websh/pkg/logging"
	"github.com/websh/websh/pkg/logging/slogext"
)

// Interpreter runs one submitted line against a session and produces a
// structured result. It never returns an error: every failure is rendered
// as stderr lines inside the result, and no failure corrupts the session
// or the tree.
type Interpreter interface {
	Execute(ctx context.Context, sess *session.Session, line string) *models.CommandResult
}

type interpreter struct {
	fs       vfs.FileSystem
	registry *Registry
	parser   Parser
}

func NewInterpreter(fs vfs.FileSystem, registry *Registry, parser Parser) Interpreter {
	return &interpreter{
		fs:       fs,
		registry: registry,
		parser:   parser,
	}
}

func (i *interpreter) Execute(ctx context.Context, sess *session.Session, line string) *models.CommandResult {
	const op = "service.interpreter.Execute"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)

	cmd, err := i.parser.Parse(line)
	if err != nil {
		logger.Debug("parse failed", slogext.Err(err), slog.String("line", line))
		return &models.CommandResult{StdErr: []string{err.Error()}}
	}

	logger.Debug("executing command",
		slog.String("name", cmd.Name),
		slog.Int("args", len(cmd.Args)),
		slog.Bool("redirect", cmd.Redirect != nil),
	)

	inner := i.dispatch(ctx, sess, cmd)

	if cmd.Redirect == nil {
		return inner
	}
	return i.applyRedirect(ctx, sess, cmd.Redirect, inner)
}

func (i *interpreter) dispatch(ctx context.Context, sess *session.Session, cmd *models.ParsedCommand) *models.CommandResult {
	if cmd.Empty() {
		return &models.CommandResult{}
	}

	command, ok := i.registry.Lookup(cmd.Name)
	if !ok {
		return &models.CommandResult{StdErr: []string{cmd.Name + ": command not found"}}
	}
	return command.Run(ctx, sess, cmd)
}

// applyRedirect routes the inner stdout into the target file, creating it
// when missing. Only the inner stderr survives to the screen.
func (i *interpreter) applyRedirect(ctx context.Context, sess *session.Session, redirect *models.Redirect, inner *models.CommandResult) *models.CommandResult {
	const op = "service.interpreter.applyRedirect"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)

	segments := vfs.SplitPath(redirect.Target)
	file := i.fs.Resolve(sess.Cwd, segments, models.NodeTypeText)
	if file == nil {
		var err error
		file, err = i.fs.Create(ctx, sess.Cwd, segments, models.NodeTypeText)
		if err != nil {
			logger.Debug("redirect target not creatable", slogext.Err(err), slog.String("target", redirect.Target))
			return &models.CommandResult{
				StdErr: append(inner.StdErr, fmt.Sprintf("%s: no such file or directory", redirect.Target)),
			}
		}
	}

	text := strings.Join(inner.StdOut, "\n")
	switch redirect.Mode {
	case models.RedirectAppend:
		if file.Content != "" && text != "" {
			file.Content += "\n" + text
		} else {
			file.Content += text
		}
	default:
		file.Content = text
	}
	i.fs.Touch(file)

	return &models.CommandResult{StdErr: inner.StdErr, Data: file}
}
