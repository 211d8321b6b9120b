package dispatchers

import (
	"io"

	"github.com/ibstat/cli/internal/domain"
)

// HelpToken is the command every processor answers with its own listing.
const HelpToken = "help"

// HandlerFunc runs a command with the argument string that followed its token.
type HandlerFunc func(args string) error

// Handler binds a command token to the function that runs it.
type Handler struct {
	Token       string
	Description string
	Run         HandlerFunc
}

// Processor is a node of the dispatch tree. It resolves a command against its
// own handlers first and then against its children, in declaration order.
type Processor struct {
	Token   string
	Summary string
	Path    []string

	handlers []Handler
	index    map[string]int
	children []*Processor
	parent   *Processor

	out    io.Writer
	logger domain.Logger
}

// Handlers returns the declared handlers in declaration order.
func (p *Processor) Handlers() []Handler {
	out := make([]Handler, len(p.handlers))
	copy(out, p.handlers)
	return out
}

// Children returns the child processors in registration order.
func (p *Processor) Children() []*Processor {
	out := make([]*Processor, len(p.children))
	copy(out, p.children)
	return out
}

// Lookup returns the local handler registered for token.
func (p *Processor) Lookup(token string) (Handler, bool) {
	i, ok := p.index[token]
	if !ok {
		return Handler{}, false
	}
	return p.handlers[i], true
}
