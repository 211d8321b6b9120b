// Package actions implements the console commands. A Console owns the
// statement loaded into the session; its methods are dispatch handlers.
package actions

import (
	"github.com/ibstat/cli/internal/domain"
	"github.com/ibstat/cli/internal/reports"
	"github.com/ibstat/cli/internal/statement"
	"github.com/ibstat/cli/internal/ui"
	"github.com/ibstat/cli/internal/usage"
)

// Console is the state shared by the command handlers.
type Console struct {
	deps   Deps
	loaded *statement.Result
	loadID string
}

// New creates a Console with nothing loaded.
func New(deps Deps) *Console {
	return &Console{deps: deps}
}

// Loaded reports whether a statement is loaded.
func (c *Console) Loaded() bool {
	return c.loaded != nil
}

// LoadID returns the store id of the current load.
func (c *Console) LoadID() string {
	return c.loadID
}

// reports returns the loaded reports or usage.NoStatement.
func (c *Console) reports() ([]reports.Report, error) {
	if c.loaded == nil {
		return nil, usage.NoStatement()
	}
	return c.loaded.Reports, nil
}

// lookup resolves a report argument against the loaded reports.
func (c *Console) lookup(name string) (reports.Report, error) {
	list, err := c.reports()
	if err != nil {
		return nil, err
	}
	rep, ok := reports.Match(list, name)
	if !ok {
		return nil, usage.UnknownReport(name, reports.Tokens(list)...)
	}
	return rep, nil
}

// typed returns the loaded report with token as its concrete type.
func typed[T reports.Report](c *Console, token string) (T, error) {
	var zero T

	list, err := c.reports()
	if err != nil {
		return zero, err
	}
	rep, ok := reports.Find(list, token)
	if !ok {
		return zero, usage.UnknownReport(token, reports.Tokens(list)...)
	}
	t, ok := rep.(T)
	if !ok {
		return zero, usage.UnknownReport(token, reports.Tokens(list)...)
	}
	return t, nil
}

func (c *Console) table(columns []string, rows []reports.Row, opts ui.TableOptions) {
	if opts.MaxRows == 0 {
		opts.MaxRows = c.deps.MaxRows
	}
	c.deps.page(ui.RenderTable(columns, rows, opts))
}

func reportRows(list []reports.Report) []domain.ReportRows {
	out := make([]domain.ReportRows, len(list))
	for i, r := range list {
		out[i] = r
	}
	return out
}
