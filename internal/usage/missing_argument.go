package usage

import "fmt"

// MissingArgument is returned when a required key:value argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("Missing required argument '%s'. Use %s:<value>", arg, arg),
		Subject: arg,
	}
}
