package dispatchers

import "strings"

// CommandInfo is one console line split into its leading command token and
// the unparsed remainder. Each dispatch hop builds a fresh value from the
// remainder of the previous one.
type CommandInfo struct {
	Command    string
	HasCommand bool
	ArgsString string
}

// ParseCommandInfo splits raw at its first space. The line is not trimmed:
// a line without a space is all command, an empty line has no command.
func ParseCommandInfo(raw string) CommandInfo {
	if raw == "" {
		return CommandInfo{}
	}

	command, args, _ := strings.Cut(raw, " ")
	return CommandInfo{
		Command:    command,
		HasCommand: true,
		ArgsString: args,
	}
}

// String reassembles the line the value was parsed from.
func (c CommandInfo) String() string {
	if c.ArgsString == "" {
		return c.Command
	}
	return c.Command + " " + c.ArgsString
}
