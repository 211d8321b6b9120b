package dispatchers

import (
	"fmt"
	"io"

	"github.com/ibstat/cli/internal/domain"
	"github.com/ibstat/cli/internal/log"
)

// RootSpec describes the top of the tree. Out receives help listings and
// diagnostics; Logger records dispatch outcomes.
type RootSpec struct {
	Token   string
	Summary string
	Out     io.Writer
	Logger  domain.Logger
}

// GroupSpec describes a child processor reached through its Token.
type GroupSpec struct {
	Token   string
	Parent  *Processor
	Summary string
}

func newProcessor(token, summary string, parent *Processor, out io.Writer, logger domain.Logger) *Processor {
	p := &Processor{
		Token:   token,
		Summary: summary,
		index:   make(map[string]int),
		parent:  parent,
		out:     out,
		logger:  logger,
	}

	if parent == nil {
		p.Path = []string{token}
	} else {
		p.Path = append(append([]string{}, parent.Path...), token)
	}

	p.Handle(HelpToken, "Show this list of commands", func(string) error {
		_, err := io.WriteString(p.out, p.HelpText())
		return err
	})
	return p
}

// Root creates the top processor of a dispatch tree.
func Root(opts RootSpec) *Processor {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}
	return newProcessor(opts.Token, opts.Summary, nil, out, logger)
}

// Group creates a child processor and registers it with its parent.
// Panics when the parent already has a child or handler with the same token,
// since the tree is built once at startup.
func Group(opts GroupSpec) *Processor {
	parent := opts.Parent
	if parent == nil {
		panic("dispatchers: group " + opts.Token + " has no parent")
	}
	if _, taken := parent.index[opts.Token]; taken {
		panic(fmt.Sprintf("dispatchers: %q is already a command of %q", opts.Token, parent.Token))
	}
	for _, c := range parent.children {
		if c.Token == opts.Token {
			panic(fmt.Sprintf("dispatchers: %q is already a group of %q", opts.Token, parent.Token))
		}
	}

	child := newProcessor(opts.Token, opts.Summary, parent, parent.out, parent.logger)
	parent.children = append(parent.children, child)
	return child
}

// Handle declares a command of this processor. Declaration order is the help
// order. Panics on an empty token or one already used by a handler or group.
func (p *Processor) Handle(token, description string, fn HandlerFunc) *Processor {
	if token == "" || fn == nil {
		panic(fmt.Sprintf("dispatchers: invalid handler %q on %q", token, p.Token))
	}
	if _, dup := p.index[token]; dup {
		panic(fmt.Sprintf("dispatchers: duplicate handler %q on %q", token, p.Token))
	}
	for _, c := range p.children {
		if c.Token == token {
			panic(fmt.Sprintf("dispatchers: %q is already a group of %q", token, p.Token))
		}
	}

	p.index[token] = len(p.handlers)
	p.handlers = append(p.handlers, Handler{
		Token:       token,
		Description: description,
		Run:         fn,
	})
	return p
}
