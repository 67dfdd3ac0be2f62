// internal/importer/similar.go
package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hbollon/go-edlib"
)

// similarShowThreshold is the Jaro-Winkler score above which two show
// directory names are reported as likely duplicates.
const similarShowThreshold = 0.92

// SimilarShows lists show directories under root whose names are close to,
// but not exactly, show. Comparison is case-insensitive, so "The office"
// is reported next to "The Office".
func SimilarShows(root, show string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read library root: %w", err)
	}

	target := strings.ToLower(show)
	var similar []string
	for _, e := range entries {
		if !e.IsDir() || e.Name() == show {
			continue
		}
		score := edlib.JaroWinklerSimilarity(target, strings.ToLower(e.Name()))
		if score >= similarShowThreshold {
			similar = append(similar, e.Name())
		}
	}
	return similar, nil
}
