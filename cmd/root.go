package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/hours/internal/codec"
	"github.com/Tiliavir/hours/internal/config"
	"github.com/Tiliavir/hours/internal/ledger"
	"github.com/Tiliavir/hours/internal/paths"
	"github.com/Tiliavir/hours/internal/registry"
	"github.com/Tiliavir/hours/internal/storage"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// app bundles the components a command works with.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	store    *storage.Store
	registry *registry.Registry
	ledger   *ledger.Ledger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "hours",
		Short: "hours – freelance time tracking and billing",
		Long: `hours records billable hours or days against the tasks of your projects
and summarises them per month for invoicing.
All data is stored in a single human-readable YAML file (~/.hours/data/projects.yaml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "Path to the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(newForCmd(opts))
	rootCmd.AddCommand(newTaskCmd(opts))
	rootCmd.AddCommand(newWorkedOnCmd(opts))
	rootCmd.AddCommand(newInvoiceCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newProjectsCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps storage failures to 2 and everything else to 1.
func exitCode(err error) int {
	switch {
	case errors.Is(err, storage.ErrReadFailed),
		errors.Is(err, storage.ErrWriteFailed),
		errors.Is(err, storage.ErrFlushFailed),
		errors.Is(err, codec.ErrDecodeFailed),
		errors.Is(err, codec.ErrEncodeFailed):
		return 2
	default:
		return 1
	}
}

// loadConfig reads the config file; problems are reported as warnings and
// the defaults are used instead.
func loadConfig(opts *rootOptions, stderr io.Writer) (config.Config, *slog.Logger) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	path, err := paths.Expand(opts.configPath)
	if err != nil {
		logger.Warn("no config found, moving forward with default config", "error", err)
		return config.Default(), logger
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("no config found, moving forward with default config", "path", path, "error", err)
	}
	if !opts.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	}
	return cfg, logger
}

// openApp loads the configuration and opens the data file.
func openApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, logger := loadConfig(opts, cmd.ErrOrStderr())

	dataPath, err := paths.Expand(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	s, err := storage.Open(dataPath, storage.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    s,
		registry: registry.New(s, registry.WithLogger(logger)),
		ledger: ledger.New(s,
			ledger.WithLogger(logger),
			ledger.WithYearMatch(cfg.MatchYear),
		),
	}, nil
}

// save persists pending changes, reporting a failed flush to the caller.
// The data file is left untouched when nothing changed.
func (a *app) save() error {
	if !a.store.Dirty() {
		return nil
	}
	a.ledger.Sync()
	return a.store.LastFlushErr()
}
