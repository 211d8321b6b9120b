package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ibstat/cli/internal/actions"
	"github.com/ibstat/cli/internal/app"
	"github.com/ibstat/cli/internal/cli"
	"github.com/ibstat/cli/internal/config"
	"github.com/ibstat/cli/internal/console"
	"github.com/ibstat/cli/internal/dispatchers"
	"github.com/ibstat/cli/internal/paths"
	"github.com/ibstat/cli/internal/reports"
	"github.com/ibstat/cli/internal/statement"
	"github.com/ibstat/cli/internal/ui/style"
)

const banner = "Welcome to IB Activity Analyzer"

type rootOptions struct {
	configPath string
	noColor    bool
	noPager    bool
	logLevel   string
}

func newRootCommand(in, out *os.File) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "ibstat [statement.csv]",
		Short: "Interactive console for Interactive Brokers activity statements",
		Long: `ibstat loads an Interactive Brokers activity statement export and
answers questions about it from an interactive console.

Type "help" at the prompt for the list of commands. Ctrl-D ends the session.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       actions.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, in, out)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (YAML or TOML)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.noPager, "no-pager", false, "print long tables without paging")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func loadConfig(opts rootOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = paths.ConfigFilePath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.noColor {
		cfg.Color = false
	}
	if opts.noPager {
		cfg.Pager = false
	}
	if opts.logLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(opts.logLevel))
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func run(opts rootOptions, args []string, in, out *os.File) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	application, err := app.New(app.Options{
		Config:       cfg,
		Out:          out,
		StyleEnabled: term.IsTerminal(int(out.Fd())),
	})
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(application) }()

	logger := application.Logger

	registry, err := reports.Discover(logger, reports.Builtin()...)
	if err != nil {
		logger.Error("report discovery failed: %v", err)
		return err
	}

	parser := statement.NewParser(registry, logger)
	c := actions.New(actions.DefaultDeps(application, parser, cfg.TableMaxRows))
	root := cli.BuildTree(c, application.Output, logger)

	fmt.Fprintf(out, "%s %s\n", style.Header(banner), style.Muted("v"+actions.Version))
	fmt.Fprintf(out, "Type %s for the list of commands.\n", style.Info("help"))

	initial := cfg.Statement
	if len(args) > 0 {
		initial = args[0]
	}
	if initial != "" {
		if err := c.LoadPath(initial); err != nil {
			logger.Error("initial load of %s: %v", initial, err)
			fmt.Fprintln(out, style.Error(err.Error()))
		}
	}

	session := console.Open(in, out, func() []string {
		return dispatchers.CollectAllCommands(root, "")
	})
	return root.Listen(session)
}
