// Package replio supplies the interactive line-reading layer for the
// expression REPL: a reader that behaves one way against a real terminal
// and another when fed from a pipe or file, plus optional REPL
// configuration.
package replio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// LineReader reads one line of expression text at a time.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// directReader reads raw lines from any stream, used for piped or
// redirected input where line editing would only get in the way.
type directReader struct {
	r *bufio.Reader
}

func (d *directReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = d.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}

	return line, nil
}

func (d *directReader) Close() error { return nil }

// interactiveReader reads lines from a real terminal via readline, giving
// history and in-line editing.
type interactiveReader struct {
	rl *readline.Instance
}

func (i *interactiveReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = i.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}

	return line, nil
}

func (i *interactiveReader) Close() error { return i.rl.Close() }

// NewReader picks an interactive readline-backed reader when stdin is a
// real terminal and a direct buffered reader otherwise, so piped input
// never sees escape sequences. direct forces the buffered reader even on
// a terminal.
func NewReader(prompt string, direct bool) (LineReader, error) {
	if !direct && (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
		if err != nil {
			return nil, fmt.Errorf("create readline config: %w", err)
		}
		return &interactiveReader{rl: rl}, nil
	}

	return &directReader{r: bufio.NewReader(os.Stdin)}, nil
}
