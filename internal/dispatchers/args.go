package dispatchers

import (
	"strconv"
	"strings"

	"github.com/ibstat/cli/internal/usage"
)

// ResolveArgument scans the space-separated tokens of args for the first one
// containing name and returns the text after its first ':'.
// Later colons stay in the value ("file:C:/x.csv" yields "C:/x.csv"), where
// a plain split would keep only the segment up to the second colon.
// ok is false when no token contains name. A matching token without ':'
// yields a usage.InvalidArgument error naming the token.
func ResolveArgument(name, args string) (value string, ok bool, err error) {
	if name == "" {
		return "", false, nil
	}

	for _, tok := range strings.Split(args, " ") {
		if !strings.Contains(tok, name) {
			continue
		}
		_, v, found := strings.Cut(tok, ":")
		if !found {
			return "", false, usage.InvalidArgument(tok)
		}
		return v, true, nil
	}
	return "", false, nil
}

// Args provides typed access to a key:value argument string.
type Args struct {
	raw string
}

// NewArgs wraps the argument string handed to a handler.
func NewArgs(raw string) Args {
	return Args{raw: raw}
}

// Raw returns the underlying argument string.
func (a Args) Raw() string {
	return a.raw
}

// String returns the value of name, or "", false when absent.
func (a Args) String(name string) (string, bool, error) {
	return ResolveArgument(name, a.raw)
}

// Required returns the value of name or a usage.MissingArgument error.
func (a Args) Required(name string) (string, error) {
	v, ok, err := a.String(name)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return "", usage.MissingArgument(name)
	}
	return v, nil
}

// Int returns the integer value of name, or defaultVal when absent.
func (a Args) Int(name string, defaultVal int) (int, error) {
	v, ok, err := a.String(name)
	if err != nil || !ok {
		return defaultVal, err
	}
	n, convErr := strconv.Atoi(v)
	if convErr != nil || n < 0 {
		return defaultVal, usage.InvalidValue(name, v)
	}
	return n, nil
}

// List returns the comma-separated values of name, or nil when absent.
func (a Args) List(name string) ([]string, error) {
	v, ok, err := a.String(name)
	if err != nil || !ok || v == "" {
		return nil, err
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}
