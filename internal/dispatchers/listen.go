package dispatchers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ibstat/cli/internal/ui/style"
	"github.com/ibstat/cli/internal/usage"
)

// Session is the line-oriented console the dispatch loop runs over.
// ReadLine blocks for the next line; io.EOF ends the session.
type Session interface {
	ReadLine() (string, error)
	io.Writer
}

// Listen runs the read-dispatch-respond loop until the session reports
// io.EOF, which ends it cleanly. Unhandled input and handler errors are
// written to the session as one diagnostic each and the loop continues.
func (p *Processor) Listen(session Session) error {
	for {
		line, err := session.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read line: %w", err)
		}

		// Blank lines only re-prompt; they are never reported as unrecognized.
		if strings.TrimSpace(line) != "" {
			p.Respond(session, line)
		}

		if errors.Is(err, io.EOF) {
			p.logger.Debug("session closed")
			return nil
		}
	}
}

// Respond dispatches one line and writes a diagnostic to w when the line is
// not handled or its handler fails. It reports whether the line was handled.
func (p *Processor) Respond(w io.Writer, line string) bool {
	handled, err := p.Dispatch(ParseCommandInfo(line))

	switch {
	case err != nil:
		p.logger.Error("command %q: %v", line, err)
		fmt.Fprintln(w, style.Error(err.Error()))
	case !handled:
		p.logger.Info("unrecognized command %q", line)
		fmt.Fprintln(w, usage.UnknownCommand(line, p.suggestFor(line)...).Error())
	default:
		p.logger.Debug("handled %q", line)
	}
	return handled
}
