// Package console provides the line-oriented sessions the dispatch loop
// reads from: a plain stream for pipes and files, and an editing terminal
// for interactive use.
package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Stream reads lines from any reader. The last line is returned with io.EOF
// when the input does not end in a newline.
type Stream struct {
	r      *bufio.Reader
	w      io.Writer
	prompt string
}

// NewStream creates a session over r and w. prompt is written before each
// read when non-empty.
func NewStream(r io.Reader, w io.Writer, prompt string) *Stream {
	return &Stream{r: bufio.NewReader(r), w: w, prompt: prompt}
}

// ReadLine returns the next line without its line ending.
func (s *Stream) ReadLine() (string, error) {
	if s.prompt != "" {
		_, _ = io.WriteString(s.w, s.prompt)
	}

	line, err := s.r.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, err
}

// Write writes to the session output.
func (s *Stream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}
