package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ibstat/cli/internal/domain"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	isTerminal    func(fd int) bool
	termSize      func(fd int) (width, height int, err error)
	runPager      func(content string, out *os.File) error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:        out,
		isTerminal: term.IsTerminal,
		termSize:   term.GetSize,
		runPager:   RunPager,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content in a scrollable viewport when it does not fit the
// terminal. Content always ends with a newline. Precedence:
//  1. pager disabled -> direct output
//  2. output is not a terminal -> direct output
//  3. content fits the terminal height -> direct output
//  4. interactive viewport; falls back to direct output on failure
func (w *Writer) Pager(content string) {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if w.pagerDisabled {
		fmt.Fprint(w.out, content)
		return
	}

	f, ok := w.out.(*os.File)
	if !ok || !w.isTerminal(int(f.Fd())) {
		fmt.Fprint(w.out, content)
		return
	}

	_, height, err := w.termSize(int(f.Fd()))
	if err != nil || strings.Count(content, "\n") < height-1 {
		fmt.Fprint(w.out, content)
		return
	}

	if err := w.runPager(content, f); err != nil {
		fmt.Fprint(w.out, content)
	}
}

var _ domain.OutputWriter = (*Writer)(nil)
