package usage

import (
	"fmt"
	"strings"
)

// NoStatement is returned by commands that need loaded reports when nothing
// has been loaded yet.
func NoStatement() *Error {
	return &Error{
		Kind:    ErrNoStatement,
		Message: "No statement loaded. Use load file:<path>",
	}
}

// UnknownReport is returned when the requested report token is not among
// the loaded reports.
func UnknownReport(token string, available ...string) *Error {
	msg := fmt.Sprintf("Report not loaded: %s", token)
	if len(available) > 0 {
		msg += fmt.Sprintf(" (loaded: %s)", strings.Join(available, ", "))
	}
	return &Error{
		Kind:    ErrUnknownReport,
		Message: msg,
		Subject: token,
	}
}
