package service

import (
	"strings"

	"github.com/websh/websh/internal/models"
	"github.com/websh/websh/internal/pkg/kerrors"
)

// ShellError is a typed interpreter-level failure; it is rendered as a
// stderr line, never thrown past the interpreter.
type ShellError struct {
	Code    int64
	Message string
}

func (e *ShellError) Error() string {
	return e.Message
}

// Parser turns one raw input line into a ParsedCommand.
type Parser interface {
	Parse(line string) (*models.ParsedCommand, error)
}

type defaultParser struct{}

func NewParser() Parser {
	return &defaultParser{}
}

// Parse splits on the first ">>" if present, else the first ">". The first
// token after the operator is the redirect target; any tokens after it are
// appended back to the argument list. A line with no non-space characters
// parses to an empty command.
func (p *defaultParser) Parse(line string) (*models.ParsedCommand, error) {
	body := line
	var redirect *models.Redirect
	var extra []string

	op, idx := findRedirect(line)
	if idx >= 0 {
		body = line[:idx]

		rest := strings.Fields(line[idx+len(op):])
		if len(rest) == 0 {
			return nil, &ShellError{
				Code:    kerrors.EINVAL,
				Message: "syntax error: expected redirect target after '" + op + "'",
			}
		}

		mode := models.RedirectTruncate
		if op == ">>" {
			mode = models.RedirectAppend
		}
		redirect = &models.Redirect{Mode: mode, Target: rest[0]}
		extra = rest[1:]
	}

	cmd := &models.ParsedCommand{Redirect: redirect}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		cmd.Args = extra
		return cmd, nil
	}

	cmd.Name = fields[0]
	cmd.Args = append(fields[1:], extra...)
	return cmd, nil
}

func findRedirect(line string) (string, int) {
	if i := strings.Index(line, ">>"); i >= 0 {
		return ">>", i
	}
	if i := strings.Index(line, ">"); i >= 0 {
		return ">", i
	}
	return "", -1
}
