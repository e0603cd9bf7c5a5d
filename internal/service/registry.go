package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/websh/websh/internal/models"
	"github.com/websh/websh/internal/session"
	"github.com/websh/websh/internal/vfs"
)

// Handler executes one command against a session.
type Handler func(ctx context.Context, sess *session.Session, cmd *models.ParsedCommand) *models.CommandResult

// Command pairs a handler with the argument file types it accepts. The
// types drive autocomplete only; handlers do their own checks at
// execution time.
type Command struct {
	Name     string
	ArgTypes []models.NodeType
	Run      Handler
}

// Registry is the static command table, built once at startup. The command
// set is fixed; nothing resolves handlers dynamically.
type Registry struct {
	fs       vfs.FileSystem
	commands map[string]Command
}

func NewRegistry(fs vfs.FileSystem) *Registry {
	r := &Registry{
		fs:       fs,
		commands: make(map[string]Command),
	}
	r.registerBuiltins()
	return r
}

func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns all command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) register(cmd Command) {
	r.commands[cmd.Name] = cmd
}

func (r *Registry) registerBuiltins() {
	dirOnly := []models.NodeType{models.NodeTypeDir}
	textOnly := []models.NodeType{models.NodeTypeText}
	anyType := []models.NodeType{models.NodeTypeDir, models.NodeTypeText}

	r.register(Command{Name: "clear", Run: func(_ context.Context, _ *session.Session, _ *models.ParsedCommand) *models.CommandResult {
		return &models.CommandResult{ClearScreen: true}
	}})

	r.register(Command{Name: "pwd", Run: func(_ context.Context, sess *session.Session, _ *models.ParsedCommand) *models.CommandResult {
		return &models.CommandResult{StdOut: []string{sess.Cwd.Path()}}
	}})

	r.register(Command{Name: "whoami", Run: func(_ context.Context, sess *session.Session, _ *models.ParsedCommand) *models.CommandResult {
		return &models.CommandResult{StdOut: []string{sess.User}}
	}})

	r.register(Command{Name: "echo", ArgTypes: anyType, Run: func(_ context.Context, _ *session.Session, cmd *models.ParsedCommand) *models.CommandResult {
		return &models.CommandResult{StdOut: []string{strings.Join(cmd.Args, " ")}}
	}})

	r.register(Command{Name: "exit", Run: func(_ context.Context, _ *session.Session, _ *models.ParsedCommand) *models.CommandResult {
		return &models.CommandResult{Quit: true}
	}})

	r.register(Command{Name: "history", Run: func(_ context.Context, sess *session.Session, _ *models.ParsedCommand) *models.CommandResult {
		res := &models.CommandResult{}
		for i, line := range sess.History() {
			res.StdOut = append(res.StdOut, fmt.Sprintf("%5d  %s", i+1, line))
		}
		return res
	}})

	r.register(Command{Name: "cd", ArgTypes: dirOnly, Run: r.runCd})
	r.register(Command{Name: "ls", ArgTypes: dirOnly, Run: r.runLs})
	r.register(Command{Name: "cat", ArgTypes: textOnly, Run: r.runCat})
	r.register(Command{Name: "touch", ArgTypes: textOnly, Run: r.runTouch})
	r.register(Command{Name: "mkdir", ArgTypes: dirOnly, Run: r.runMkdir})
	r.register(Command{Name: "vi", ArgTypes: textOnly, Run: r.runVi})
}

// runCd jumps to the root with no arguments, otherwise resolves the first
// argument as a directory and makes it current.
func (r *Registry) runCd(_ context.Context, sess *session.Session, cmd *models.ParsedCommand) *models.CommandResult {
	if len(cmd.Args) == 0 {
		sess.Cwd = r.fs.Root()
		return &models.CommandResult{}
	}

	target := cmd.Args[0]
	dir := r.fs.Resolve(sess.Cwd, vfs.SplitPath(target), models.NodeTypeDir)
	if dir == nil {
		return &models.CommandResult{StdErr: []string{fmt.Sprintf("%s: directory not found", target)}}
	}

	sess.Cwd = dir
	return &models.CommandResult{}
}

func (r *Registry) runLs(_ context.Context, sess *session.Session, cmd *models.ParsedCommand) *models.CommandResult {
	res := &models.CommandResult{}

	if len(cmd.Args) == 0 {
		if line := entriesLine(sess.Cwd.Children); line != "" {
			res.StdOut = append(res.StdOut, line)
		}
		return res
	}

	for _, arg := range cmd.Args {
		sub := &models.CommandResult{}

		dir := r.fs.Resolve(sess.Cwd, vfs.SplitPath(arg), models.NodeTypeDir)
		if dir == nil {
			sub.StdErr = append(sub.StdErr, fmt.Sprintf("ls: cannot access %s: no such file or directory", arg))
			res.Merge(sub)
			continue
		}

		if len(cmd.Args) > 1 {
			sub.StdOut = append(sub.StdOut, arg+":")
		}
		if line := entriesLine(dir.Children); line != "" {
			sub.StdOut = append(sub.StdOut, line)
		}
		res.Merge(sub)
	}
	return res
}

func (r *Registry) runCat(_ context.Context, sess *session.Session, cmd *models.ParsedCommand) *models.CommandResult {
	res := &models.CommandResult{}

	for _, arg := range cmd.Args {
		node := r.fs.Resolve(sess.Cwd, vfs.SplitPath(arg), "")
		if node == nil {
			res.StdErr = append(res.StdErr, fmt.Sprintf("cat: %s: No such file or directory", arg))
			continue
		}
		if node.IsDir() {
			res.StdErr = append(res.StdErr, fmt.Sprintf("cat: %s: Is a directory", node.Name))
			continue
		}
		res.StdOut = append(res.StdOut, node.Lines()...)
	}
	return res
}

// runTouch refreshes the timestamp of an existing text file or creates an
// empty one, per argument.
func (r *Registry) runTouch(ctx context.Context, sess *session.Session, cmd *models.ParsedCommand) *models.CommandResult {
	res := &models.CommandResult{}

	for _, arg := range cmd.Args {
		segments := vfs.SplitPath(arg)

		if file := r.fs.Resolve(sess.Cwd, segments, models.NodeTypeText); file != nil {
			r.fs.Touch(file)
			continue
		}

		if _, err := r.fs.Create(ctx, sess.Cwd, segments, models.NodeTypeText); err != nil {
			res.StdErr = append(res.StdErr, fmt.Sprintf("touch: cannot touch %s: no such file or directory", arg))
		}
	}
	return res
}

// runMkdir creates a directory per argument; an already existing directory
// is a silent no-op.
func (r *Registry) runMkdir(ctx context.Context, sess *session.Session, cmd *models.ParsedCommand) *models.CommandResult {
	res := &models.CommandResult{}

	for _, arg := range cmd.Args {
		segments := vfs.SplitPath(arg)

		if dir := r.fs.Resolve(sess.Cwd, segments, models.NodeTypeDir); dir != nil {
			continue
		}

		if _, err := r.fs.Create(ctx, sess.Cwd, segments, models.NodeTypeDir); err != nil {
			res.StdErr = append(res.StdErr, fmt.Sprintf("mkdir: cannot create directory %s: no such file or directory", arg))
		}
	}
	return res
}

// runVi resolves (or leaves unresolved, to be created on save) a text file
// and asks the display layer to hand control to the editor. It returns
// immediately; the takeover is modal, not blocking.
func (r *Registry) runVi(_ context.Context, sess *session.Session, cmd *models.ParsedCommand) *models.CommandResult {
	if len(cmd.Args) == 0 {
		return &models.CommandResult{StdErr: []string{"vi: missing file operand"}}
	}

	path := cmd.Args[0]
	file := r.fs.Resolve(sess.Cwd, vfs.SplitPath(path), models.NodeTypeText)
	return &models.CommandResult{Edit: &models.EditRequest{Path: path, File: file}}
}

func entriesLine(entries []*models.FileNode) string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return strings.Join(names, "  ")
}
