package pyenv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoManifest is returned when none of the candidate dependency
// manifests exists.
var ErrNoManifest = errors.New("no dependency manifest found")

// ManifestCandidates are the manifest locations checked in priority
// order. The repository root wins over the backend-nested copy.
var ManifestCandidates = []string{
	"requirements.txt",
	filepath.Join("backend", "requirements.txt"),
}

// FindManifest returns the first existing manifest under root,
// checking candidates in order. With no candidates given it uses
// ManifestCandidates.
func FindManifest(root string, candidates ...string) (string, error) {
	if len(candidates) == 0 {
		candidates = ManifestCandidates
	}

	for _, c := range candidates {
		path := filepath.Join(root, c)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w (looked for %s)", ErrNoManifest, strings.Join(candidates, ", "))
}
