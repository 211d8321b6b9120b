package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand describes input that no processor in the tree could handle.
func UnknownCommand(input string, suggestions ...string) *Error {
	msg := fmt.Sprintf("Unrecognized command: %s", input)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\nDid you mean: %s?", strings.Join(suggestions, ", "))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
		Subject: input,
	}
}
