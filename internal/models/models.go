package models

import (
	"strings"
	"time"
)

type NodeType string

const (
	NodeTypeDir  NodeType = "dir"
	NodeTypeText NodeType = "txt"
)

// FileNode is a single entry in the virtual filesystem tree. Directories
// own their children in creation order; Parent is a non-owning
// back-reference and is nil only for the root.
type FileNode struct {
	Name     string
	Type     NodeType
	Parent   *FileNode
	Children []*FileNode
	Content  string
	ModTime  time.Time
}

func (n *FileNode) IsDir() bool {
	return n.Type == NodeTypeDir
}

// Path derives the full path from the parent chain. The root renders as "~".
func (n *FileNode) Path() string {
	if n.Parent == nil {
		return "~"
	}
	return n.Parent.Path() + "/" + n.Name
}

// Lines splits the content into display lines. An empty file has no lines.
func (n *FileNode) Lines() []string {
	if n.Content == "" {
		return nil
	}
	return strings.Split(n.Content, "\n")
}

type RedirectMode string

const (
	RedirectTruncate RedirectMode = "truncate"
	RedirectAppend   RedirectMode = "append"
)

type Redirect struct {
	Mode   RedirectMode
	Target string
}

// ParsedCommand is the structured form of one submitted line, immutable
// after parsing. A blank line parses to the zero value.
type ParsedCommand struct {
	Name     string
	Args     []string
	Redirect *Redirect
}

func (c *ParsedCommand) Empty() bool {
	return c.Name == ""
}

// EditRequest asks the display layer to hand control to the editor child
// process. File is nil when the target does not exist yet; it is created
// on the first save.
type EditRequest struct {
	Path string
	File *FileNode
}

// CommandResult carries everything a command produced. StdOut and StdErr
// are display lines; Data is a created or located node for callers that
// need one (redirection). The remaining fields are signals interpreted
// only by the display layer.
type CommandResult struct {
	StdOut []string
	StdErr []string
	Data   *FileNode

	ClearScreen bool
	Quit        bool
	Edit        *EditRequest
}

// Merge appends other's streams to r's, preserving per-stream order.
func (r *CommandResult) Merge(other *CommandResult) *CommandResult {
	if other == nil {
		return r
	}
	r.StdOut = append(r.StdOut, other.StdOut...)
	r.StdErr = append(r.StdErr, other.StdErr...)
	return r
}
