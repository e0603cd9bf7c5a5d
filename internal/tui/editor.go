package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/websh/websh/internal/models"
	"github.com/websh/websh/internal/session"
	"github.com/websh/websh/internal/vfs"
)

// editorDoneMsg signals that the editor child released control back to the
// shell.
type editorDoneMsg struct {
	errLine string
}

// editorModel is the modal "vi" child process: while it is active every
// keystroke routes here until it signals termination.
type editorModel struct {
	ctx    context.Context
	fs     vfs.FileSystem
	sess   *session.Session
	path   string
	file   *models.FileNode
	area   textarea.Model
	status string
}

func newEditor(ctx context.Context, fs vfs.FileSystem, sess *session.Session, req *models.EditRequest, width, height int) editorModel {
	area := textarea.New()
	area.CharLimit = 0
	if req.File != nil {
		area.SetValue(req.File.Content)
	}
	area.Focus()

	e := editorModel{
		ctx:  ctx,
		fs:   fs,
		sess: sess,
		path: req.Path,
		file: req.File,
		area: area,
	}
	e.resize(width, height)
	return e
}

func (e *editorModel) resize(width, height int) {
	e.area.SetWidth(width)
	if height > 2 {
		e.area.SetHeight(height - 2)
	}
}

func (e editorModel) init() tea.Cmd {
	return textarea.Blink
}

func (e editorModel) update(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return e, func() tea.Msg { return editorDoneMsg{} }

	case "ctrl+s":
		if err := e.save(); err != nil {
			line := fmt.Sprintf("vi: %s: no such file or directory", e.path)
			return e, func() tea.Msg { return editorDoneMsg{errLine: line} }
		}
		e.status = fmt.Sprintf("\"%s\" written", e.path)
		return e, nil
	}

	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return e, cmd
}

// save writes the buffer into the file, creating it on first save when the
// path did not resolve at open time.
func (e *editorModel) save() error {
	if e.file == nil {
		file, err := e.fs.Create(e.ctx, e.sess.Cwd, vfs.SplitPath(e.path), models.NodeTypeText)
		if err != nil {
			return err
		}
		e.file = file
	}

	e.file.Content = e.area.Value()
	e.fs.Touch(e.file)
	return nil
}

func (e editorModel) view() string {
	title := editorTitleStyle.Render("vi " + e.path)
	help := editorHelpStyle.Render("ctrl+s write  esc quit")
	if e.status != "" {
		help = editorHelpStyle.Render(e.status+"  ") + help
	}
	return title + "\n" + e.area.View() + "\n" + help
}
