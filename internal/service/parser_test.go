package service

import (
	"testing"

	"github.com/websh/websh/internal/models"
)

func TestParser_Parse(t *testing.T) {

	// Table-driven test: each case has a raw line and the expected command.
	tests := []struct {
		name         string
		input        string
		wantName     string
		wantArgs     []string
		wantRedirect *models.Redirect
		wantErr      bool
	}{
		{
			name:     "simple command",
			input:    "echo hello",
			wantName: "echo",
			wantArgs: []string{"hello"},
		},
		{
			name:     "command with multiple arguments",
			input:    "ls docs src",
			wantName: "ls",
			wantArgs: []string{"docs", "src"},
		},
		{
			name:     "extra spaces are collapsed",
			input:    "  echo   hi  there ",
			wantName: "echo",
			wantArgs: []string{"hi", "there"},
		},
		{
			name:     "blank line is a no-op",
			input:    "   ",
			wantName: "",
		},
		{
			name:         "truncate redirect",
			input:        "echo hi > out.txt",
			wantName:     "echo",
			wantArgs:     []string{"hi"},
			wantRedirect: &models.Redirect{Mode: models.RedirectTruncate, Target: "out.txt"},
		},
		{
			name:         "append redirect",
			input:        "echo hi >> out.txt",
			wantName:     "echo",
			wantArgs:     []string{"hi"},
			wantRedirect: &models.Redirect{Mode: models.RedirectAppend, Target: "out.txt"},
		},
		{
			name:         "append checked before truncate",
			input:        "echo a >> b >> c",
			wantName:     "echo",
			wantArgs:     []string{"a", ">>", "c"},
			wantRedirect: &models.Redirect{Mode: models.RedirectAppend, Target: "b"},
		},
		{
			name:         "tokens after the target become arguments",
			input:        "echo hi > out.txt there",
			wantName:     "echo",
			wantArgs:     []string{"hi", "there"},
			wantRedirect: &models.Redirect{Mode: models.RedirectTruncate, Target: "out.txt"},
		},
		{
			name:         "redirect without command body",
			input:        "> out.txt",
			wantName:     "",
			wantRedirect: &models.Redirect{Mode: models.RedirectTruncate, Target: "out.txt"},
		},
		{
			name:    "missing redirect target",
			input:   "echo hi >",
			wantErr: true,
		},
		{
			name:    "missing append target",
			input:   "echo hi >>  ",
			wantErr: true,
		},
	}

	parser := NewParser()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := parser.Parse(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if cmd.Name != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, cmd.Name)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("expected args %v, got %v", tt.wantArgs, cmd.Args)
			}
			for i := range cmd.Args {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("expected args %v, got %v", tt.wantArgs, cmd.Args)
					break
				}
			}

			switch {
			case tt.wantRedirect == nil && cmd.Redirect != nil:
				t.Errorf("expected no redirect, got %+v", cmd.Redirect)
			case tt.wantRedirect != nil && cmd.Redirect == nil:
				t.Error("expected a redirect, got none")
			case tt.wantRedirect != nil:
				if cmd.Redirect.Mode != tt.wantRedirect.Mode || cmd.Redirect.Target != tt.wantRedirect.Target {
					t.Errorf("expected redirect %+v, got %+v", tt.wantRedirect, cmd.Redirect)
				}
			}
		})
	}
}
