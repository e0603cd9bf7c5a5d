package render

import (
	"reflect"
	"testing"

	"github.com/websh/websh/internal/models"
)

func TestPrompt(t *testing.T) {
	got := Prompt("guest", "websh", "~/docs")
	want := "guest@websh:~/docs$ "
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLines(t *testing.T) {
	res := &models.CommandResult{
		StdOut: []string{"one", "two"},
		StdErr: []string{"bad"},
	}

	got := Lines(res)
	want := []Line{
		{Text: "one"},
		{Text: "two"},
		{Text: "bad", IsErr: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLinesNilResult(t *testing.T) {
	if got := Lines(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
