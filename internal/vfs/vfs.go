package vfs

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/websh/websh/internal/models"
	"github.com/websh/websh/internal/pkg/kerrors"
	"github.com/websh/websh/pkg/logging"
)

// Error is a typed filesystem failure. Commands translate it into stderr
// lines; it never aborts the session.
type Error struct {
	Code    int64
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

const (
	segSelf   = "."
	segParent = ".."
	segRoot   = "~"
)

// FileSystem owns the in-memory directory tree. Resolve is pure; nodes are
// created only through Create and live for the session.
type FileSystem interface {
	Root() *models.FileNode
	Resolve(start *models.FileNode, segments []string, want models.NodeType) *models.FileNode
	Create(ctx context.Context, start *models.FileNode, segments []string, typ models.NodeType) (*models.FileNode, error)
	ListByTypes(dir *models.FileNode, types []models.NodeType) []*models.FileNode
	Touch(node *models.FileNode)
}

type fileSystem struct {
	root *models.FileNode
	now  func() time.Time
}

func New() FileSystem {
	return &fileSystem{
		root: &models.FileNode{Type: models.NodeTypeDir},
		now:  time.Now,
	}
}

func (f *fileSystem) Root() *models.FileNode {
	return f.root
}

// Resolve walks segments from start. The want filter applies to the final
// hop only; intermediate hops must be directories. An empty final segment
// stands for the directory reached so far. Any failed hop returns nil.
func (f *fileSystem) Resolve(start *models.FileNode, segments []string, want models.NodeType) *models.FileNode {
	current := start

	for i, seg := range segments {
		last := i == len(segments)-1

		var next *models.FileNode
		switch seg {
		case segSelf, "":
			next = current
		case segParent:
			// the root's ".." is the root itself
			next = current.Parent
			if next == nil {
				next = current
			}
		case segRoot:
			next = f.root
		default:
			if last {
				next = childNamed(current, seg, want)
			} else {
				next = childNamed(current, seg, models.NodeTypeDir)
			}
		}

		if next == nil {
			return nil
		}
		if !last && !next.IsDir() {
			return nil
		}
		if last && want != "" && next.Type != want {
			return nil
		}

		current = next
	}

	return current
}

// Create resolves all but the last segment as a directory and appends a new
// node of the requested type. It never overwrites an existing sibling;
// callers check for one first.
func (f *fileSystem) Create(ctx context.Context, start *models.FileNode, segments []string, typ models.NodeType) (*models.FileNode, error) {
	const op = "vfs.fileSystem.Create"

	logger := logging.GetLoggerFromContextWithOp(ctx, op)

	if len(segments) == 0 {
		return nil, &Error{Code: kerrors.EINVAL, Message: "empty path"}
	}

	name := segments[len(segments)-1]
	if name == "" || name == segSelf || name == segParent || name == segRoot {
		return nil, &Error{Code: kerrors.EINVAL, Message: "invalid node name: " + name}
	}

	parent := f.Resolve(start, segments[:len(segments)-1], models.NodeTypeDir)
	if parent == nil {
		logger.Debug("parent directory not found", slog.String("path", strings.Join(segments, "/")))
		return nil, &Error{Code: kerrors.ENOENT, Message: "directory not found"}
	}

	node := &models.FileNode{
		Name:   name,
		Type:   typ,
		Parent: parent,
	}
	if typ == models.NodeTypeText {
		node.ModTime = f.now()
	}
	parent.Children = append(parent.Children, node)

	logger.Debug("node created", slog.String("path", node.Path()), slog.String("type", string(typ)))
	return node, nil
}

// ListByTypes returns dir's children whose type is in types, in stored
// order. Empty types means no filter.
func (f *fileSystem) ListByTypes(dir *models.FileNode, types []models.NodeType) []*models.FileNode {
	if len(types) == 0 {
		return dir.Children
	}

	var out []*models.FileNode
	for _, child := range dir.Children {
		for _, t := range types {
			if child.Type == t {
				out = append(out, child)
				break
			}
		}
	}
	return out
}

// Touch refreshes a node's modified timestamp.
func (f *fileSystem) Touch(node *models.FileNode) {
	node.ModTime = f.now()
}

func childNamed(dir *models.FileNode, name string, want models.NodeType) *models.FileNode {
	for _, child := range dir.Children {
		if child.Name != name {
			continue
		}
		if want != "" && child.Type != want {
			continue
		}
		return child
	}
	return nil
}

// SplitPath splits a slash-separated path into resolver segments.
func SplitPath(path string) []string {
	return strings.Split(path, "/")
}
