package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/websh/websh/internal/models"
	"github.com/websh/websh/internal/session"
	"github.com/websh/websh/internal/vfs"
)

func newTestEngine(t *testing.T) (AutocompleteEngine, *session.Session) {
	t.Helper()

	fs := vfs.New()
	ctx := context.Background()

	mustCreate := func(segments []string, typ models.NodeType) {
		if _, err := fs.Create(ctx, fs.Root(), segments, typ); err != nil {
			t.Fatalf("create %v: %v", segments, err)
		}
	}
	mustCreate([]string{"docs"}, models.NodeTypeDir)
	mustCreate([]string{"docs", "readme.txt"}, models.NodeTypeText)
	mustCreate([]string{"downloads"}, models.NodeTypeDir)
	mustCreate([]string{"notes.txt"}, models.NodeTypeText)

	registry := NewRegistry(fs)
	sess := session.New("tester", fs.Root())
	return NewAutocompleteEngine(fs, registry), sess
}

func TestCompleteCommandName(t *testing.T) {
	engine, sess := newTestEngine(t)

	tests := []struct {
		name           string
		buffer         string
		wantAppend     string
		wantCandidates []string
	}{
		{
			name:       "single match completes the suffix",
			buffer:     "pw",
			wantAppend: "d",
		},
		{
			name:       "whoami from wh",
			buffer:     "wh",
			wantAppend: "oami",
		},
		{
			name:           "multiple matches are listed",
			buffer:         "c",
			wantCandidates: []string{"cat", "cd", "clear"},
		},
		{
			name:           "e matches echo and exit",
			buffer:         "e",
			wantCandidates: []string{"echo", "exit"},
		},
		{
			name:       "exact name yields an empty suffix",
			buffer:     "ls",
			wantAppend: "",
		},
		{
			name:   "no match",
			buffer: "zz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Complete(sess, tt.buffer)
			if got.Append != tt.wantAppend {
				t.Errorf("expected append %q, got %q", tt.wantAppend, got.Append)
			}
			if !reflect.DeepEqual(got.Candidates, tt.wantCandidates) {
				t.Errorf("expected candidates %v, got %v", tt.wantCandidates, got.Candidates)
			}
		})
	}
}

func TestCompleteArgument(t *testing.T) {
	engine, sess := newTestEngine(t)

	tests := []struct {
		name           string
		buffer         string
		wantAppend     string
		wantCandidates []string
	}{
		{
			name:       "cat completes a text file",
			buffer:     "cat no",
			wantAppend: "tes.txt",
		},
		{
			name:       "cd completes a directory with separator",
			buffer:     "cd doc",
			wantAppend: "s/",
		},
		{
			name:           "cd with two directory matches",
			buffer:         "cd d",
			wantCandidates: []string{"docs/", "downloads/"},
		},
		{
			name:       "cat falls back to directories for navigation",
			buffer:     "cat doc",
			wantAppend: "s/",
		},
		{
			name:       "completion inside a subdirectory",
			buffer:     "cat docs/re",
			wantAppend: "adme.txt",
		},
		{
			name:           "trailing space lists everything of the accepted type",
			buffer:         "cd ",
			wantCandidates: []string{"docs/", "downloads/"},
		},
		{
			name:   "unknown command completes nothing",
			buffer: "bogus do",
		},
		{
			name:   "command without path arguments completes nothing",
			buffer: "pwd do",
		},
		{
			name:   "unresolvable directory portion",
			buffer: "cat missing/re",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Complete(sess, tt.buffer)
			if got.Append != tt.wantAppend {
				t.Errorf("expected append %q, got %q", tt.wantAppend, got.Append)
			}
			if !reflect.DeepEqual(got.Candidates, tt.wantCandidates) {
				t.Errorf("expected candidates %v, got %v", tt.wantCandidates, got.Candidates)
			}
		})
	}
}
