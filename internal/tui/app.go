// Package tui is the terminal front end of the shell: the display surface,
// the keystroke source and the modal editor takeover. The interpreter core
// never touches the terminal directly.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/websh/websh/internal/service"
	"github.com/websh/websh/internal/session"
	"github.com/websh/websh/internal/vfs"
	"github.com/websh/websh/pkg/render"
)

type mode int

const (
	modeShell mode = iota
	modeEditor
)

type Model struct {
	ctx    context.Context
	host   string
	fs     vfs.FileSystem
	interp service.Interpreter
	engine service.AutocompleteEngine
	sess   *session.Session

	output   []render.Line // scrollback
	mode     mode
	editor   editorModel
	width    int
	height   int
	quitting bool
}

func NewModel(ctx context.Context, host string, fs vfs.FileSystem, interp service.Interpreter, engine service.AutocompleteEngine, sess *session.Session) Model {
	return Model{
		ctx:    ctx,
		host:   host,
		fs:     fs,
		interp: interp,
		engine: engine,
		sess:   sess,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == modeEditor {
			m.editor.resize(msg.Width, msg.Height)
		}
		return m, nil

	case editorDoneMsg:
		m.mode = modeShell
		if msg.errLine != "" {
			m.output = append(m.output, render.Line{Text: msg.errLine, IsErr: true})
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeEditor {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.update(msg)
			return m, cmd
		}
		return m.updateShell(msg)
	}

	return m, nil
}

func (m Model) updateShell(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// any key but tab disarms the pending candidate display
	if msg.String() != "tab" {
		m.sess.ClearTab()
	}

	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "backspace":
		m.sess.Backspace()

	case "up":
		if line, ok := m.sess.HistoryPrev(); ok {
			m.sess.Buffer = line
		}

	case "down":
		if line, ok := m.sess.HistoryNext(); ok {
			m.sess.Buffer = line
		}

	case "tab":
		m.completeTab()

	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.sess.Append(string(msg.Runes))
		case tea.KeySpace:
			m.sess.Append(" ")
		}
	}

	return m, nil
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	line := m.sess.Buffer
	m.output = append(m.output, render.Line{Text: m.promptLine() + line})
	m.sess.Buffer = ""

	// a blank line just echoes the prompt
	if strings.TrimSpace(line) == "" {
		return *m, nil
	}

	m.sess.Record(line)
	res := m.interp.Execute(m.ctx, m.sess, line)

	if res.ClearScreen {
		m.output = nil
	}
	m.output = append(m.output, render.Lines(res)...)

	if res.Edit != nil {
		m.editor = newEditor(m.ctx, m.fs, m.sess, res.Edit, m.width, m.height)
		m.mode = modeEditor
		return *m, m.editor.init()
	}
	if res.Quit {
		m.quitting = true
		return *m, tea.Quit
	}

	return *m, nil
}

// completeTab resolves a tab press: a single candidate is applied in
// place, several are shown only on the second consecutive tab.
func (m *Model) completeTab() {
	completion := m.engine.Complete(m.sess, m.sess.Buffer)

	switch {
	case completion.Append != "":
		m.sess.ClearTab()
		m.sess.Append(completion.Append)

	case len(completion.Candidates) > 1:
		if m.sess.TabPending() {
			m.output = append(m.output,
				render.Line{Text: m.promptLine() + m.sess.Buffer},
				render.Line{Text: strings.Join(completion.Candidates, "  ")},
			)
			m.sess.ClearTab()
		} else {
			m.sess.ArmTab()
		}

	default:
		m.sess.ClearTab()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeEditor {
		return m.editor.view()
	}

	var b strings.Builder

	lines := m.output
	visible := m.height - 1
	if visible > 0 && len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	for _, line := range lines {
		if line.IsErr {
			b.WriteString(errStyle.Render(line.Text))
		} else {
			b.WriteString(line.Text)
		}
		b.WriteString("\n")
	}

	b.WriteString(m.promptLine() + m.sess.Buffer + cursorStyle.Render(" "))
	return b.String()
}

func (m Model) promptLine() string {
	return promptStyle.Render(render.Prompt(m.sess.User, m.host, m.sess.Cwd.Path()))
}
