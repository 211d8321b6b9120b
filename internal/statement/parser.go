package statement

import (
	"fmt"
	"os"

	"github.com/ibstat/cli/internal/domain"
	"github.com/ibstat/cli/internal/log"
	"github.com/ibstat/cli/internal/reports"
)

// Status is what became of one section during a load.
type Status int

const (
	// StatusReport means the section produced a report.
	StatusReport Status = iota
	// StatusUnmatched means the section parsed but no report type claims it.
	StatusUnmatched
	// StatusMalformed means the section is not a valid table.
	StatusMalformed
	// StatusBuildFailed means the report builder rejected the rows.
	StatusBuildFailed
)

func (s Status) String() string {
	switch s {
	case StatusReport:
		return "report"
	case StatusUnmatched:
		return "unmatched"
	case StatusMalformed:
		return "malformed"
	case StatusBuildFailed:
		return "build failed"
	default:
		return "unknown"
	}
}

// Outcome records how one section was handled.
type Outcome struct {
	Token  string
	Lines  int
	Rows   int
	Status Status
	Err    error
}

// Result is the outcome of loading one statement.
type Result struct {
	Source   string
	Reports  []reports.Report
	Sections []Outcome
}

// Dropped returns the sections that did not produce a report.
func (r Result) Dropped() []Outcome {
	var out []Outcome
	for _, o := range r.Sections {
		if o.Status != StatusReport {
			out = append(out, o)
		}
	}
	return out
}

// Parser turns statement text into reports using a registry.
type Parser struct {
	registry *reports.Registry
	logger   domain.Logger
}

// NewParser creates a Parser. A nil logger discards output.
func NewParser(registry *reports.Registry, logger domain.Logger) *Parser {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Parser{registry: registry, logger: logger}
}

// Parse returns the reports found in raw, in section order. It never fails:
// malformed and unknown sections are left out.
func (p *Parser) Parse(raw string) []reports.Report {
	return p.Load(raw).Reports
}

// Load is Parse with the per-section outcomes kept.
func (p *Parser) Load(raw string) Result {
	var res Result

	for _, sec := range Segment(raw) {
		out := Outcome{Token: sec.Token, Lines: len(sec.Lines)}

		columns, rows, err := ParseTable(sec.Lines)
		if err != nil {
			out.Status, out.Err = StatusMalformed, err
			p.logger.Debug("section %q dropped: %v", sec.Token, err)
			res.Sections = append(res.Sections, out)
			continue
		}
		out.Rows = len(rows)

		build, ok := p.registry.Lookup(sec.Token)
		if !ok {
			out.Status = StatusUnmatched
			p.logger.Debug("section %q dropped: no report type", sec.Token)
			res.Sections = append(res.Sections, out)
			continue
		}

		rep, err := build(sec.Token, rows, columns)
		if err != nil || rep == nil {
			if err == nil {
				err = fmt.Errorf("builder returned no report")
			}
			out.Status, out.Err = StatusBuildFailed, err
			p.logger.Warn("section %q dropped: %v", sec.Token, err)
			res.Sections = append(res.Sections, out)
			continue
		}

		out.Status = StatusReport
		res.Reports = append(res.Reports, rep)
		res.Sections = append(res.Sections, out)
	}

	p.logger.Info("parsed %d sections into %d reports", len(res.Sections), len(res.Reports))
	return res
}

// ParseFile loads the statement at path. Only reading the file can fail.
func (p *Parser) ParseFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read statement: %w", err)
	}

	res := p.Load(string(data))
	res.Source = path
	p.logger.Info("loaded %s: %d sections, %d reports", path, len(res.Sections), len(res.Reports))
	return res, nil
}
