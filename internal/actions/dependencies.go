package actions

import (
	"os"

	"github.com/ibstat/cli/internal/domain"
	"github.com/ibstat/cli/internal/export"
	"github.com/ibstat/cli/internal/log"
	"github.com/ibstat/cli/internal/paths"
	"github.com/ibstat/cli/internal/reports"
	"github.com/ibstat/cli/internal/statement"
)

// Version is the console version, set at build time.
var Version = "dev"

// Deps are the collaborators the console commands call.
type Deps struct {
	Printf  func(format string, a ...any) (n int, err error)
	Println func(a ...any) (n int, err error)
	Pager   func(content string)

	ParseFile  func(path string) (statement.Result, error)
	RecordLoad func(source string, reports []domain.ReportRows) (string, error)
	Loads      func() ([]domain.LoadRecord, error)
	Find       func(loadID, token, column, value string) ([]domain.StoredRow, error)
	Export     func(path, token string, columns []string, rows []reports.Row) error

	ConfigAll func() map[string]string
	Version   func() string
	Logger    domain.Logger

	// LogPath returns the session log file, or "" when logging is off.
	LogPath  func() string
	ReadFile func(path string) ([]byte, error)

	// MaxRows bounds printed tables unless a command asks for a limit.
	MaxRows int
}

// DefaultDeps wires the commands to an application and a statement parser.
func DefaultDeps(app *domain.Application, parser *statement.Parser, maxRows int) Deps {
	logger := app.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}
	return Deps{
		Printf:     app.Output.Printf,
		Println:    app.Output.Println,
		Pager:      app.Output.Pager,
		ParseFile:  parser.ParseFile,
		RecordLoad: app.Store.RecordLoad,
		Loads:      app.Store.Loads,
		Find:       app.Store.Find,
		Export:     export.WriteXLSX,
		ConfigAll:  app.Config.GetAll,
		Version:    func() string { return Version },
		Logger:     logger,
		LogPath:    func() string { return logPath(app.Config) },
		ReadFile:   os.ReadFile,
		MaxRows:    maxRows,
	}
}

// logPath mirrors the factory's choice of log file.
func logPath(cfg domain.ConfigProvider) string {
	if enabled, _ := cfg.Get("log_enabled"); enabled == "false" {
		return ""
	}
	if p, _ := cfg.Get("log_file"); p != "" {
		return p
	}
	return paths.LogFilePath()
}

func (d Deps) printf(format string, a ...any) {
	if d.Printf == nil {
		return
	}
	_, _ = d.Printf(format, a...)
}

func (d Deps) logger() domain.Logger {
	if d.Logger == nil {
		return log.NopLogger{}
	}
	return d.Logger
}

func (d Deps) page(content string) {
	if d.Pager != nil {
		d.Pager(content)
		return
	}
	d.printf("%s\n", content)
}
