package dispatchers

import (
	"fmt"
	"strings"

	"github.com/ibstat/cli/internal/ui/style"
)

// HelpText lists the processor's declared handlers in declaration order as
// "-- <token> - <description>", followed by its child processors.
func (p *Processor) HelpText() string {
	var b strings.Builder

	for _, h := range p.handlers {
		fmt.Fprintf(&b, "-- %s - %s\n", style.Info(h.Token), h.Description)
	}

	for _, c := range p.children {
		fmt.Fprintf(&b, "-- %s %s - %s\n", style.Info(c.Token), style.Muted("<command>"), c.Summary)
	}

	return b.String()
}
