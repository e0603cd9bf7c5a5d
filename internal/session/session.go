// Package session holds the per-shell mutable state: line buffer, command
// history, tab state and the current directory reference. It is threaded
// explicitly through interpreter calls so independent sessions can coexist.
package session

import (
	"github.com/google/uuid"

	"github.com/websh/websh/internal/models"
)

type Session struct {
	ID     string
	User   string
	Buffer string
	Cwd    *models.FileNode

	history []string
	cursor  int

	// pendingTab arms the candidate display between two consecutive tabs
	pendingTab bool
}

func New(user string, cwd *models.FileNode) *Session {
	return &Session{
		ID:   uuid.New().String(),
		User: user,
		Cwd:  cwd,
	}
}

func (s *Session) Append(text string) {
	s.Buffer += text
}

// Backspace drops the last rune from the buffer; no-op when empty.
func (s *Session) Backspace() {
	if s.Buffer == "" {
		return
	}
	runes := []rune(s.Buffer)
	s.Buffer = string(runes[:len(runes)-1])
}

// Record appends a submitted line to the history and resets the cursor to
// one past the end. History is append-only and never deduplicated.
func (s *Session) Record(line string) {
	s.history = append(s.history, line)
	s.cursor = len(s.history)
}

func (s *Session) History() []string {
	return s.history
}

// HistoryPrev moves the cursor back and returns the entry there, if any.
func (s *Session) HistoryPrev() (string, bool) {
	if s.cursor == 0 {
		return "", false
	}
	s.cursor--
	return s.history[s.cursor], true
}

// HistoryNext moves the cursor forward and returns the entry at the new
// position, or the empty string once past the last entry.
func (s *Session) HistoryNext() (string, bool) {
	if s.cursor >= len(s.history) {
		return "", false
	}
	s.cursor++
	if s.cursor == len(s.history) {
		return "", true
	}
	return s.history[s.cursor], true
}

func (s *Session) ArmTab() {
	s.pendingTab = true
}

func (s *Session) ClearTab() {
	s.pendingTab = false
}

func (s *Session) TabPending() bool {
	return s.pendingTab
}
