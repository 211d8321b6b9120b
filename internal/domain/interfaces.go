package domain

import (
	"io"
	"time"
)

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// LoadRecord describes one statement load within the running session.
type LoadRecord struct {
	ID          string
	Source      string
	LoadedAt    time.Time
	ReportCount int
	RowCount    int
}

// StoredRow is one report row as mirrored in the report store.
type StoredRow struct {
	Token  string
	Index  int
	Values map[string]string
}

// ReportRows is the minimal view of a report the store needs to mirror it.
type ReportRows interface {
	Token() string
	Columns() []string
	Rows() []map[string]string
}

// ReportStore mirrors loaded reports for ad-hoc lookups and keeps the load
// history of the session.
type ReportStore interface {
	// RecordLoad stores the rows of every report and returns the load id.
	RecordLoad(source string, reports []ReportRows) (string, error)

	// Loads returns the load history, oldest first.
	Loads() ([]LoadRecord, error)

	// Find returns rows of the given report whose column equals value.
	Find(loadID, token, column, value string) ([]StoredRow, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider exposes the effective configuration as key/value pairs.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() map[string]string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Store  ReportStore
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
