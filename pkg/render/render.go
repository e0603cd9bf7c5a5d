// Package render encodes interpreter results for the display boundary.
package render

import (
	"fmt"

	"github.com/websh/websh/internal/models"
)

// Line is one display line; IsErr marks stderr output so the surface can
// style it differently.
type Line struct {
	Text  string
	IsErr bool
}

// Prompt formats the shell prompt from the user name and the current
// directory path.
func Prompt(user, host, path string) string {
	return fmt.Sprintf("%s@%s:%s$ ", user, host, path)
}

// Lines flattens a result into display lines, stdout first, stderr after.
func Lines(res *models.CommandResult) []Line {
	if res == nil {
		return nil
	}

	out := make([]Line, 0, len(res.StdOut)+len(res.StdErr))
	for _, text := range res.StdOut {
		out = append(out, Line{Text: text})
	}
	for _, text := range res.StdErr {
		out = append(out, Line{Text: text, IsErr: true})
	}
	return out
}
