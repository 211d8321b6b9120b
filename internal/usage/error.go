package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidArgument
	ErrMissingArgument
	ErrUnknownCommand
	ErrNoStatement
	ErrUnknownReport
	ErrInvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrMissingArgument:
		return "missing argument"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrNoStatement:
		return "no statement"
	case ErrUnknownReport:
		return "unknown report"
	case ErrInvalidValue:
		return "invalid value"
	default:
		return "unknown"
	}
}

// Error represents a user-facing usage error with semantic type information.
// The console loop prints Message and keeps reading.
type Error struct {
	Kind    ErrorKind
	Message string
	// Subject is the offending token, argument or report name.
	Subject string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is a usage error of the same kind, so that
// errors.Is(err, &usage.Error{Kind: usage.ErrInvalidArgument}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
