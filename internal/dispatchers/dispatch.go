package dispatchers

import "fmt"

// Dispatch resolves command against this subtree and runs at most one handler.
// handled is false when neither a local handler nor a child with a matching
// token consumed the command. err is whatever the handler returned.
func (p *Processor) Dispatch(command CommandInfo) (handled bool, err error) {
	if !command.HasCommand {
		return false, nil
	}

	if h, ok := p.Lookup(command.Command); ok {
		return true, p.run(h, command.ArgsString)
	}

	for _, child := range p.children {
		if child.Token != command.Command {
			continue
		}
		handled, err := child.Dispatch(ParseCommandInfo(command.ArgsString))
		if handled {
			return true, err
		}
	}

	return false, nil
}

// run executes h, converting a panic into an error so one bad command does
// not end the session.
func (p *Processor) run(h Handler, args string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command %s failed: %v", h.Token, r)
		}
	}()
	return h.Run(args)
}
