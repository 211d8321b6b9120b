package reports

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ibstat/cli/internal/domain"
	"github.com/ibstat/cli/internal/log"
)

// Builder constructs the typed report for one category.
type Builder func(token string, rows []Row, columns []string) (Report, error)

// Entry declares the category token a report type handles.
type Entry struct {
	Token string
	Build Builder
}

// ErrNilBuilder is returned by Discover for an entry that claims a token but
// cannot construct a report.
var ErrNilBuilder = errors.New("report entry has no builder")

// Registry maps category tokens to report builders. It is immutable after
// Discover returns.
type Registry struct {
	builders map[string]Builder
}

// Discover builds a Registry from entries. Entries with a blank token are
// skipped. A later entry for an already registered token replaces the
// earlier one and is logged as a warning.
func Discover(logger domain.Logger, entries ...Entry) (*Registry, error) {
	if logger == nil {
		logger = log.NopLogger{}
	}

	r := &Registry{builders: make(map[string]Builder, len(entries))}
	for i, e := range entries {
		if strings.TrimSpace(e.Token) == "" {
			logger.Debug("report entry %d has no token, skipped", i)
			continue
		}
		if e.Build == nil {
			return nil, fmt.Errorf("discover reports: %q: %w", e.Token, ErrNilBuilder)
		}
		if _, dup := r.builders[e.Token]; dup {
			logger.Warn("report token %q registered twice, last registration wins", e.Token)
		}
		r.builders[e.Token] = e.Build
	}

	logger.Debug("discovered %d report types", len(r.builders))
	return r, nil
}

// Lookup returns the builder registered for token.
func (r *Registry) Lookup(token string) (Builder, bool) {
	if r == nil {
		return nil, false
	}
	b, ok := r.builders[token]
	return b, ok
}

// Tokens returns the registered tokens in sorted order.
func (r *Registry) Tokens() []string {
	if r == nil {
		return nil
	}
	tokens := make([]string, 0, len(r.builders))
	for t := range r.builders {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Len returns the number of registered tokens.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.builders)
}
