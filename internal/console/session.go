package console

import (
	"os"

	"golang.org/x/term"

	"github.com/ibstat/cli/internal/dispatchers"
)

// Prompt is shown before each interactive read.
const Prompt = "> "

// Open returns a Terminal when in is a TTY and a Stream otherwise.
func Open(in, out *os.File, complete Completer) dispatchers.Session {
	if term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		return NewTerminal(in, out, Prompt, complete)
	}
	return NewStream(in, out, "")
}
