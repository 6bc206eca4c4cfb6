package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ManifestFileName is matched case-insensitively during traversal.
const ManifestFileName = "manifest.json"

// Walker discovers SMAPI manifest files under a mods directory tree.
type Walker struct {
	log zerolog.Logger
}

// NewWalker creates a Walker that reports traversal problems to logger.
func NewWalker(logger zerolog.Logger) *Walker {
	return &Walker{log: logger}
}

// Walk returns the path of every manifest file under root, in traversal
// order. Unreadable subtrees are logged and skipped rather than aborting
// the walk.
func (w *Walker) Walk(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var manifests []string

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if strings.EqualFold(info.Name(), ManifestFileName) {
			manifests = append(manifests, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	w.log.Info().Int("count", len(manifests)).Str("root", root).Msg("Discovered manifest files")
	return manifests, nil
}
