package scanner

//go:generate mockgen -source=deps.go -destination=mocks/mock_deps.go -package=mocks

import "github.com/vmunix/filesorter/internal/importer"

// Reconciler writes a source file to its library destination when needed.
// *importer.Reconciler satisfies it.
type Reconciler interface {
	Reconcile(src, dst string) (importer.Action, error)
}
