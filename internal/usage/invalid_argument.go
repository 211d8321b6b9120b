package usage

import "fmt"

// InvalidArgument is returned when an argument token names the requested key
// but is not shaped like key:value.
func InvalidArgument(token string) *Error {
	return &Error{
		Kind:    ErrInvalidArgument,
		Message: fmt.Sprintf("Invalid argument: %s", token),
		Subject: token,
	}
}

// InvalidValue is returned when a key:value argument carries a value the
// command cannot use (e.g. a non-numeric limit).
func InvalidValue(name, value string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("Invalid value for %s: %s", name, value),
		Subject: name,
	}
}
