// Package app wires the console's collaborators into a domain.Application.
package app

import (
	"io"
	"os"

	"github.com/ibstat/cli/internal/config"
	"github.com/ibstat/cli/internal/domain"
	"github.com/ibstat/cli/internal/log"
	"github.com/ibstat/cli/internal/paths"
	"github.com/ibstat/cli/internal/store"
	"github.com/ibstat/cli/internal/ui"
	"github.com/ibstat/cli/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Config is the effective configuration. Nil means defaults.
	Config *config.Config

	// Out receives command output. Nil means stdout.
	Out io.Writer

	// StyleEnabled allows colors; the color setting must allow them too.
	StyleEnabled bool
}

// New creates an Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}

	logger := newLogger(cfg)

	reportStore, err := store.New(store.MemoryDSN)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled && cfg.Color)

	var writerOpts []ui.WriterOption
	if !cfg.Pager {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	logger.Info("application started (log level %s)", cfg.LogLevel)

	return &domain.Application{
		Store:  reportStore,
		Config: config.NewProvider(cfg),
		Logger: logger,
		Output: ui.NewWriterTo(out, writerOpts...),
		Styler: style.NewStyler(),
	}, nil
}

func newLogger(cfg *config.Config) domain.Logger {
	if !cfg.LogEnabled {
		return log.NopLogger{}
	}
	path := cfg.LogFile
	if path == "" {
		path = paths.LogFilePath()
	}
	l, err := log.New(path, log.ParseLevel(cfg.LogLevel))
	if err != nil {
		return log.NopLogger{}
	}
	return l
}

// NewForTesting creates an Application over an in-memory store that writes
// to out, with no logging, styling or pager.
func NewForTesting(out io.Writer) (*domain.Application, error) {
	reportStore, err := store.New(store.MemoryDSN)
	if err != nil {
		return nil, err
	}
	return &domain.Application{
		Store:  reportStore,
		Config: config.NewProvider(config.Defaults()),
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(out, ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}, nil
}

// Close releases application resources.
func Close(app *domain.Application) error {
	if app == nil {
		return nil
	}
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		return app.Store.Close()
	}
	return nil
}
