package service

import (
	"sort"
	"strings"

	"github.com/websh/websh/internal/models"
	"github.com/websh/websh/internal/session"
	"github.com/websh/websh/internal/vfs"
)

// Completion is the outcome of one tab request. Exactly one candidate
// yields Append, the suffix beyond what is already typed; several yield
// Candidates for the double-tab display; zero yields neither.
type Completion struct {
	Append     string
	Candidates []string
}

// AutocompleteEngine proposes completions for the current line buffer,
// consulting the command table for names and the filesystem for paths.
type AutocompleteEngine interface {
	Complete(sess *session.Session, buffer string) Completion
}

type autocompleteEngine struct {
	fs       vfs.FileSystem
	registry *Registry
}

func NewAutocompleteEngine(fs vfs.FileSystem, registry *Registry) AutocompleteEngine {
	return &autocompleteEngine{
		fs:       fs,
		registry: registry,
	}
}

func (e *autocompleteEngine) Complete(sess *session.Session, buffer string) Completion {
	trimmed := strings.TrimLeft(buffer, " ")

	// Still typing the command name: no space after it yet.
	if !strings.Contains(trimmed, " ") {
		return e.completeCommand(trimmed)
	}

	fields := strings.Fields(trimmed)
	partial := ""
	if !strings.HasSuffix(trimmed, " ") {
		partial = fields[len(fields)-1]
	}
	return e.completeArgument(sess, fields[0], partial)
}

func (e *autocompleteEngine) completeCommand(partial string) Completion {
	var matches []string
	for _, name := range e.registry.Names() {
		if strings.HasPrefix(name, partial) {
			matches = append(matches, name)
		}
	}
	return finish(matches, partial)
}

// completeArgument matches the final path segment against the entries of
// the resolved parent directory, filtered to the command's accepted types.
// When the filtered search yields nothing it falls back to directories
// only, so a typed target stays reachable through subdirectories.
func (e *autocompleteEngine) completeArgument(sess *session.Session, name, partial string) Completion {
	command, ok := e.registry.Lookup(name)
	if !ok || len(command.ArgTypes) == 0 {
		return Completion{}
	}

	segments := vfs.SplitPath(partial)
	final := segments[len(segments)-1]

	dir := e.fs.Resolve(sess.Cwd, segments[:len(segments)-1], models.NodeTypeDir)
	if dir == nil {
		return Completion{}
	}

	matches := matchEntries(e.fs.ListByTypes(dir, command.ArgTypes), final)
	if len(matches) == 0 {
		matches = matchEntries(e.fs.ListByTypes(dir, []models.NodeType{models.NodeTypeDir}), final)
	}
	return finish(matches, final)
}

// matchEntries keeps prefix matches, marking directories with a trailing
// separator to signal they are further navigable.
func matchEntries(entries []*models.FileNode, partial string) []string {
	var out []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name, partial) {
			continue
		}
		name := entry.Name
		if entry.IsDir() {
			name += "/"
		}
		out = append(out, name)
	}
	return out
}

func finish(matches []string, partial string) Completion {
	switch len(matches) {
	case 0:
		return Completion{}
	case 1:
		return Completion{Append: matches[0][len(partial):]}
	default:
		sort.Strings(matches)
		return Completion{Candidates: matches}
	}
}
