package console

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"
)

// Completer returns every command path the console accepts.
type Completer func() []string

// Terminal is an interactive session with line editing, history and tab
// completion. The terminal is only in raw mode while a line is being read,
// so command output and the pager see a normal terminal.
type Terminal struct {
	fd   int
	out  io.Writer
	term *term.Terminal
}

// NewTerminal creates a session over in and out, which must be a TTY.
func NewTerminal(in *os.File, out io.Writer, prompt string, complete Completer) *Terminal {
	t := &Terminal{
		fd:   int(in.Fd()),
		out:  out,
		term: term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{in, out}, prompt),
	}

	if complete != nil {
		t.term.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
			if key != '\t' {
				return "", 0, false
			}
			return CompleteLine(complete(), line, pos)
		}
	}
	return t
}

// ReadLine reads one edited line. Ctrl-D on an empty line returns io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return "", fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(t.fd, state) }()

	return t.term.ReadLine()
}

// Write writes to the session output.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// CompleteLine extends the text before pos to the longest common prefix of
// the candidates it starts. A unique match also gets a trailing space.
func CompleteLine(candidates []string, line string, pos int) (string, int, bool) {
	prefix := line[:pos]

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) && c != prefix {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return "", 0, false
	}
	sort.Strings(matches)

	completed := matches[0] + " "
	if len(matches) > 1 {
		completed = commonPrefix(matches)
		if completed == prefix {
			return "", 0, false
		}
	}
	return completed + line[pos:], len(completed), true
}

func commonPrefix(values []string) string {
	p := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}
