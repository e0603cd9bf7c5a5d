package session

import (
	"testing"

	"github.com/websh/websh/internal/models"
)

func newTestSession() *Session {
	root := &models.FileNode{Type: models.NodeTypeDir}
	return New("tester", root)
}

func TestBuffer(t *testing.T) {
	s := newTestSession()

	s.Append("ech")
	s.Append("o")
	if s.Buffer != "echo" {
		t.Errorf("expected buffer echo, got %q", s.Buffer)
	}

	s.Backspace()
	if s.Buffer != "ech" {
		t.Errorf("expected buffer ech, got %q", s.Buffer)
	}
}

func TestBackspaceOnEmptyBuffer(t *testing.T) {
	s := newTestSession()

	s.Backspace()
	if s.Buffer != "" {
		t.Errorf("expected empty buffer, got %q", s.Buffer)
	}
}

func TestBackspaceDropsWholeRune(t *testing.T) {
	s := newTestSession()

	s.Append("héllo")
	for i := 0; i < 4; i++ {
		s.Backspace()
	}
	if s.Buffer != "h" {
		t.Errorf("expected h, got %q", s.Buffer)
	}
}

func TestHistoryNavigation(t *testing.T) {
	s := newTestSession()

	s.Record("a")
	s.Record("b")

	// one up shows b, a second shows a
	if line, ok := s.HistoryPrev(); !ok || line != "b" {
		t.Errorf("expected b, got %q (%v)", line, ok)
	}
	if line, ok := s.HistoryPrev(); !ok || line != "a" {
		t.Errorf("expected a, got %q (%v)", line, ok)
	}

	// at the oldest entry, up is a no-op
	if _, ok := s.HistoryPrev(); ok {
		t.Error("expected no entry before the oldest")
	}

	// one down shows b again
	if line, ok := s.HistoryNext(); !ok || line != "b" {
		t.Errorf("expected b, got %q (%v)", line, ok)
	}

	// a further down clears to empty
	if line, ok := s.HistoryNext(); !ok || line != "" {
		t.Errorf("expected empty string, got %q (%v)", line, ok)
	}

	// past the end, down is a no-op
	if _, ok := s.HistoryNext(); ok {
		t.Error("expected no entry past the end")
	}
}

func TestRecordResetsCursor(t *testing.T) {
	s := newTestSession()

	s.Record("a")
	s.HistoryPrev()
	s.Record("b")

	// after a submission the cursor sits one past the end again
	if line, ok := s.HistoryPrev(); !ok || line != "b" {
		t.Errorf("expected b right after recording, got %q (%v)", line, ok)
	}
}

func TestHistoryKeepsDuplicates(t *testing.T) {
	s := newTestSession()

	s.Record("ls")
	s.Record("ls")

	if len(s.History()) != 2 {
		t.Errorf("expected 2 entries, got %d", len(s.History()))
	}
}

func TestTabFlag(t *testing.T) {
	s := newTestSession()

	if s.TabPending() {
		t.Error("expected tab flag to start cleared")
	}
	s.ArmTab()
	if !s.TabPending() {
		t.Error("expected tab flag armed")
	}
	s.ClearTab()
	if s.TabPending() {
		t.Error("expected tab flag cleared")
	}
}
