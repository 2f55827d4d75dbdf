package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter asks questions one line at a time. It is used when stdin
// or stdout is not a terminal, e.g. when input is piped in.
type LinePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter over in and out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(in), out: out}
}

// Select implements Prompter. All options are listed; pageSize only
// controls how often a page marker is printed.
func (p *LinePrompter) Select(ctx context.Context, label string, options []string, pageSize int) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if len(options) == 0 {
		return -1, ErrNoOptions
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	fmt.Fprintf(p.out, "? %s\n", label)
	for i, opt := range options {
		if i > 0 && i%pageSize == 0 {
			fmt.Fprintf(p.out, "  -- page %d --\n", i/pageSize+1)
		}
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprintf(p.out, "Choice [1-%d]: ", len(options))
		line, err := p.readLine()
		if err != nil {
			return -1, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "invalid choice %q\n", line)
	}
}

// Text implements Prompter
func (p *LinePrompter) Text(ctx context.Context, label, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if defaultValue != "" {
		fmt.Fprintf(p.out, "? %s (%s): ", label, defaultValue)
	} else {
		fmt.Fprintf(p.out, "? %s: ", label)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
