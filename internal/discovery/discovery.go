// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"anypy/internal/pyver"
)

// Scanner locates interpreter executables under a root directory.
type Scanner struct {
	// Root is the directory holding one subdirectory per installed
	// interpreter.
	Root string
	// Pattern is the glob matched against interpreter directory names,
	// e.g. "python-*-embed-*".
	Pattern string
	// Executable is the interpreter file name inside each directory.
	Executable string
}

// NewScanner creates a Scanner for the given root using the supplied
// directory glob and executable name.
func NewScanner(root, pattern, executable string) *Scanner {
	return &Scanner{Root: root, Pattern: pattern, Executable: executable}
}

// Scan globs for interpreter executables and returns their descriptors
// sorted ascending by version. Entries whose directory name does not yield
// a parsable version are skipped rather than failing the whole scan.
func (s *Scanner) Scan() ([]pyver.Descriptor, error) {
	glob := filepath.Join(s.Root, s.Pattern, s.Executable)
	log.Debug("scanning for interpreters", "glob", glob)

	paths, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", glob, err)
	}

	descs := make([]pyver.Descriptor, 0, len(paths))
	for _, path := range paths {
		version, err := versionFromPath(path)
		if err != nil {
			log.Debug("skipping entry without a version segment", "path", path, "error", err)
			continue
		}
		desc, err := pyver.NewDescriptor(path, version)
		if err != nil {
			log.Debug("skipping entry with unparsable version", "path", path, "error", err)
			continue
		}
		descs = append(descs, desc)
	}

	pyver.Sort(descs)
	log.Debug("discovery finished", "count", len(descs))
	return descs, nil
}

// versionFromPath extracts the declared version from the executable's parent
// directory name: the segment after the first "-" in <prefix>-<version>-<suffix>.
func versionFromPath(path string) (string, error) {
	dir := filepath.Base(filepath.Dir(path))
	parts := strings.Split(dir, "-")
	if len(parts) < 2 {
		return "", fmt.Errorf("directory %q does not follow <prefix>-<version>-<suffix>", dir)
	}
	return parts[1], nil
}
