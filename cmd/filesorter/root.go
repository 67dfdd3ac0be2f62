package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/filesorter/internal/config"
	"github.com/vmunix/filesorter/internal/importer"
	"github.com/vmunix/filesorter/internal/logging"
	"github.com/vmunix/filesorter/internal/scanner"
)

var version = "dev"

const usageLine = "Usage: filesorter -d --src [SRC] --dest [DEST]"

// errUsage signals that the usage line was printed and the process should
// exit non-zero without further output.
var errUsage = errors.New("usage")

type rootOptions struct {
	configPath string
	source     string
	dest       string
	dryRun     bool
	logLevel   string
	logFormat  string
	once       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "filesorter",
		Short: "Sort downloaded TV episodes into a Plex-style library",
		Long: `filesorter - sort downloaded TV episodes into a library

Scans the source tree for .mkv and .mp4 files, works out show, season
and episode from the filename and its parent directory, and copies each
episode to <dest>/TV/<Show>/Season <N>/<Show.Name>.s<SS>e<E>.<ext>.
The scan repeats every 15 minutes until interrupted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.source, "src", "", "Source directory to scan")
	f.StringVar(&opts.dest, "dest", "", "Destination library root")
	f.BoolVarP(&opts.dryRun, "dry-run", "d", false, "Log decisions without touching the filesystem")
	f.StringVar(&opts.configPath, "config", "", "Path to config file (default $"+config.EnvConfigPath+" or XDG config)")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")
	f.BoolVar(&opts.once, "once", false, "Run a single scan and exit")

	cmd.Version = version
	cmd.SetVersionTemplate("filesorter {{.Version}}\n")

	cmd.AddCommand(newParseCmd(), newInitCmd(), newVersionCmd())
	return cmd
}

// loadConfig reads the optional config file and overlays explicitly set flags.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, string, error) {
	path := opts.configPath
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, "", err
		}
		path = discovered
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, path, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("src") {
		cfg.Source = opts.source
	}
	if flags.Changed("dest") {
		cfg.Destination = opts.dest
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = opts.dryRun
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	return cfg, path, nil
}

func runWatch(cmd *cobra.Command, opts *rootOptions) error {
	cfg, path, err := loadConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cfg.Source == "" || cfg.Destination == "" {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return errUsage
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: path, Errors: errs}
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	tvRoot := cfg.TVRoot()
	if err := ensureLibrary(tvRoot, cfg.DryRun, logger); err != nil {
		return err
	}

	sc := scanner.New(scanner.Config{
		Source: cfg.Source,
		TVRoot: tvRoot,
		DryRun: cfg.DryRun,
	},
		importer.NewReconciler(cfg.DryRun, logger.With("component", "reconciler")),
		logger.With("component", "scanner"),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.once {
		_, err := sc.Once(ctx)
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sc.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// ensureLibrary creates the TV root when it does not exist yet.
func ensureLibrary(tvRoot string, dryRun bool, logger *slog.Logger) error {
	if info, err := os.Stat(tvRoot); err == nil && info.IsDir() {
		return nil
	}
	if dryRun {
		logger.Info("would create directory", "dir", tvRoot, "dry_run", true)
		return nil
	}
	if err := importer.EnsureDir(tvRoot); err != nil {
		return err
	}
	logger.Info("created directory", "dir", tvRoot)
	return nil
}
