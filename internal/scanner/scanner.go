// Package scanner walks the source tree and sorts recognized episodes into
// the TV library, one file at a time.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/filesorter/internal/importer"
	"github.com/vmunix/filesorter/pkg/episode"
)

// DefaultInterval is the pause between scan cycles.
const DefaultInterval = 15 * time.Minute

// sampleDir is never descended into.
const sampleDir = "Sample"

// Config for the scanner.
type Config struct {
	Source   string        // Root of the download tree
	TVRoot   string        // Library root, usually <dest>/TV
	DryRun   bool          // Log decisions without touching the filesystem
	Interval time.Duration // Defaults to DefaultInterval
}

// Stats summarizes one scan cycle.
type Stats struct {
	Candidates   int
	Copied       int
	Replaced     int
	Skipped      int
	Unrecognized int
	Failed       int
}

// Scanner runs scan cycles against the source tree.
type Scanner struct {
	config     Config
	reconciler Reconciler
	log        *slog.Logger
	running    atomic.Bool
}

// New creates a scanner.
func New(cfg Config, reconciler Reconciler, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	cfg.TVRoot = filepath.Clean(cfg.TVRoot)
	return &Scanner{
		config:     cfg,
		reconciler: reconciler,
		log:        log,
	}
}

// Run scans, sleeps for the configured interval and repeats until ctx is
// canceled. Cycles never overlap.
func (s *Scanner) Run(ctx context.Context) error {
	s.log.Info("watcher started",
		"source", s.config.Source,
		"library", s.config.TVRoot,
		"interval", s.config.Interval.String(),
		"dry_run", s.config.DryRun,
	)

	for {
		if err := ctx.Err(); err != nil {
			s.log.Info("watcher stopped")
			return err
		}

		if _, err := s.Cycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.log.Error("scan failed", "source", s.config.Source, "error", err)
		}

		s.log.Info("sleeping", "duration", s.config.Interval.String())
		timer := time.NewTimer(s.config.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("watcher stopped")
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Once runs a single cycle and reports its outcome.
func (s *Scanner) Once(ctx context.Context) (Stats, error) {
	s.log.Info("single scan",
		"source", s.config.Source,
		"library", s.config.TVRoot,
		"dry_run", s.config.DryRun,
	)
	return s.Cycle(ctx)
}

// Cycle walks the source tree once. Per-file problems are logged and
// counted; the returned error is reserved for failures that stop the walk.
func (s *Scanner) Cycle(ctx context.Context) (Stats, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Stats{}, ErrCycleInProgress
	}
	defer s.running.Store(false)

	c := &cycle{
		Scanner: s,
		log:     s.log.With("cycle_id", uuid.NewString()),
		created: make(map[string]bool),
	}

	start := time.Now()
	c.log.Info("checking source directory", "source", s.config.Source)

	err := filepath.WalkDir(s.config.Source, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == s.config.Source {
				return err
			}
			c.log.Warn("cannot read path", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			if path == s.config.Source {
				return nil
			}
			if d.Name() == sampleDir || path == s.config.TVRoot {
				return fs.SkipDir
			}
			return nil
		}

		if !episode.IsCandidate(d.Name()) {
			return nil
		}
		c.process(path, d.Name())
		return nil
	})

	c.log.Info("cycle complete",
		"candidates", c.stats.Candidates,
		"copied", c.stats.Copied,
		"replaced", c.stats.Replaced,
		"skipped", c.stats.Skipped,
		"unrecognized", c.stats.Unrecognized,
		"failed", c.stats.Failed,
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)

	if err != nil {
		return c.stats, fmt.Errorf("walk source: %w", err)
	}
	return c.stats, nil
}

// cycle holds the state of a single pass over the source tree.
type cycle struct {
	*Scanner
	log     *slog.Logger
	stats   Stats
	created map[string]bool // season directories known to exist this cycle
}

func (c *cycle) process(path, name string) {
	c.stats.Candidates++

	dir := filepath.Base(filepath.Dir(path))
	result, dest, err := episode.Resolve(name, dir)
	if err != nil {
		c.stats.Unrecognized++
		c.log.Warn("unrecognized filename format",
			"path", path,
			"partial", fmt.Sprintf("%+v", result.Identity),
			"error", err,
		)
		return
	}
	c.log.Debug("identified episode",
		"path", path,
		"show", result.Identity.Show,
		"season", result.Identity.Season,
		"episode", result.Identity.Episode,
		"heuristics", result.Matched,
	)

	destDir := filepath.Join(c.config.TVRoot, dest.ShowDir, dest.SeasonDir)
	destPath := filepath.Join(destDir, dest.Filename)
	if err := importer.ValidatePath(destPath, c.config.TVRoot); err != nil {
		c.stats.Failed++
		c.log.Error("destination outside library", "path", path, "dest", destPath, "error", err)
		return
	}

	if err := c.ensureDir(destDir, dest.ShowDir); err != nil {
		c.stats.Failed++
		c.log.Error("failed to make destination directory", "path", path, "dir", destDir, "error", err)
		return
	}

	action, err := c.reconciler.Reconcile(path, destPath)
	if err != nil {
		c.stats.Failed++
		c.log.Error("copy failed", "path", path, "dest", destPath, "error", err)
		return
	}

	switch action {
	case importer.ActionCopied:
		c.stats.Copied++
	case importer.ActionReplaced:
		c.stats.Replaced++
	case importer.ActionSkipped:
		c.stats.Skipped++
	}
}

// ensureDir creates a season directory at most once per cycle.
func (c *cycle) ensureDir(dir, show string) error {
	if c.created[dir] {
		return nil
	}
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		c.created[dir] = true
		return nil
	}

	showPath := filepath.Join(c.config.TVRoot, show)
	if _, err := os.Stat(showPath); errors.Is(err, fs.ErrNotExist) {
		c.warnSimilar(show)
	}

	if c.config.DryRun {
		c.log.Info("would create directory", "dir", dir, "dry_run", true)
		c.created[dir] = true
		return nil
	}

	if err := importer.EnsureDir(dir); err != nil {
		return err
	}
	c.log.Info("created directory", "dir", dir)
	c.created[dir] = true
	return nil
}

// warnSimilar flags a new show directory that nearly matches an existing one,
// which usually means a naming variant of a show already in the library.
func (c *cycle) warnSimilar(show string) {
	similar, err := importer.SimilarShows(c.config.TVRoot, show)
	if err != nil {
		c.log.Debug("similar show check failed", "show", show, "error", err)
		return
	}
	if len(similar) > 0 {
		c.log.Warn("new show directory resembles existing shows", "show", show, "existing", similar)
	}
}
