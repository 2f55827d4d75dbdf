// Package tui implements the interactive prompts and styled output of the CLI
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrInterrupted is returned when the operator aborts a prompt
	ErrInterrupted = errors.New("prompt interrupted")
	// ErrNoOptions is returned by Select when there is nothing to choose
	ErrNoOptions = errors.New("no options to select from")
)

// Prompter asks the operator for input. Both methods block until the
// operator answers, aborts, or ctx is cancelled.
type Prompter interface {
	// Select returns the index of the chosen option, showing pageSize
	// options at a time.
	Select(ctx context.Context, label string, options []string, pageSize int) (int, error)
	// Text returns the entered line, or defaultValue if it was blank.
	Text(ctx context.Context, label, defaultValue string) (string, error)
}

// TeaPrompter runs each prompt as a short-lived inline bubbletea program
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewTeaPrompter creates a prompter reading from in and drawing to out.
// Nil streams fall back to the terminal.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{In: in, Out: out}
}

func (p *TeaPrompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}
	return tea.NewProgram(m, opts...).Run()
}

// promptErr maps the ways a program can end without an answer to
// ErrInterrupted. A program stopped by SIGTERM returns cleanly, so an
// unfinished model counts as interrupted too.
func promptErr(ctx context.Context, kind, label string, err error, answered bool) error {
	switch {
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	case errors.Is(err, tea.ErrInterrupted), errors.Is(err, tea.ErrProgramKilled):
		return ErrInterrupted
	case err != nil:
		return fmt.Errorf("%s %q: %w", kind, label, err)
	case !answered:
		return ErrInterrupted
	}
	return nil
}

// Select implements Prompter
func (p *TeaPrompter) Select(ctx context.Context, label string, options []string, pageSize int) (int, error) {
	if len(options) == 0 {
		return -1, ErrNoOptions
	}

	final, err := p.run(ctx, newSelectModel(label, options, pageSize))
	m, _ := final.(selectModel)
	if err := promptErr(ctx, "select", label, err, m.done && !m.aborted); err != nil {
		return -1, err
	}
	return m.cursor, nil
}

// Text implements Prompter
func (p *TeaPrompter) Text(ctx context.Context, label, defaultValue string) (string, error) {
	final, err := p.run(ctx, newTextModel(label, defaultValue))
	m, _ := final.(textModel)
	if err := promptErr(ctx, "text", label, err, m.done && !m.aborted); err != nil {
		return "", err
	}
	return m.value, nil
}
