// internal/importer/reconcile.go
package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
)

// Action is the outcome of reconciling a source file with its destination.
type Action int

const (
	// ActionSkipped means the destination already holds a file of the same size.
	ActionSkipped Action = iota
	// ActionReplaced means a destination of the wrong size was removed and rewritten.
	ActionReplaced
	// ActionCopied means the destination was missing and has been written.
	ActionCopied
)

func (a Action) String() string {
	switch a {
	case ActionSkipped:
		return "skipped"
	case ActionReplaced:
		return "replaced"
	case ActionCopied:
		return "copied"
	default:
		return "unknown"
	}
}

// Reconciler decides whether a destination file needs to be written and
// performs the copy. In dry-run mode it logs the decision and touches nothing.
type Reconciler struct {
	dryRun bool
	log    *slog.Logger
}

// NewReconciler creates a reconciler.
func NewReconciler(dryRun bool, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{dryRun: dryRun, log: log}
}

// Reconcile brings dst in line with src.
//
//	dst missing            -> copy
//	dst same size as src   -> skip, no I/O
//	dst different size     -> remove dst, then copy
//
// A size mismatch is treated as a partial copy left behind by an earlier run.
func (r *Reconciler) Reconcile(src, dst string) (Action, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return ActionSkipped, fmt.Errorf("%w: stat source: %v", ErrCopyFailed, err)
	}
	srcSize := srcInfo.Size()

	action := ActionCopied
	dstInfo, err := os.Stat(dst)
	switch {
	case err == nil:
		if dstInfo.Size() == srcSize {
			r.log.Debug("destination up to date", "dest", dst, "size", humanize.Bytes(uint64(srcSize)))
			return ActionSkipped, nil
		}
		action = ActionReplaced
		r.log.Info("destination size mismatch",
			"dest", dst,
			"source_size", srcSize,
			"dest_size", dstInfo.Size(),
		)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return ActionSkipped, fmt.Errorf("%w: stat destination: %v", ErrCopyFailed, err)
	}

	if r.dryRun {
		r.log.Info("would copy", "src", src, "dest", dst, "action", action.String(), "dry_run", true)
		return action, nil
	}

	if action == ActionReplaced {
		if err := os.Remove(dst); err != nil {
			return action, fmt.Errorf("%w: %v", ErrRemoveFailed, err)
		}
	}

	r.log.Info("copying", "src", src, "dest", dst, "size", humanize.Bytes(uint64(srcSize)))
	if _, err := CopyFile(src, dst); err != nil {
		return action, err
	}
	r.log.Info("copy complete", "dest", dst, "action", action.String())
	return action, nil
}
