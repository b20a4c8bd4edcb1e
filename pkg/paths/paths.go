package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
)

const (
	// EnvShortcutsDir overrides the network-shortcuts container
	// directory. The config layer maps the same setting, so the variable
	// works for library users that never load configuration.
	EnvShortcutsDir = "NETLOC_SHORTCUTS_DIR"

	// EnvHome is used as a fallback for ~ expansion.
	EnvHome = "HOME"
)

// Paths provides the filesystem locations netloc works against.
type Paths struct {
	shortcutsDir string
	usedFallback bool
}

// New creates a Paths instance. The container directory is resolved in
// order: the given override, the NETLOC_SHORTCUTS_DIR environment
// variable, then the platform default.
func New(override string) (*Paths, error) {
	p := &Paths{}

	switch {
	case override != "":
		p.shortcutsDir = expandHome(override)
	case os.Getenv(EnvShortcutsDir) != "":
		p.shortcutsDir = expandHome(os.Getenv(EnvShortcutsDir))
	default:
		dir, fallback, err := defaultShortcutsDir()
		if err != nil {
			return nil, err
		}
		p.shortcutsDir = dir
		p.usedFallback = fallback
	}

	abs, err := filepath.Abs(p.shortcutsDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure,
			"failed to get absolute path for shortcuts dir %q", p.shortcutsDir)
	}
	p.shortcutsDir = abs

	return p, nil
}

// ShortcutsDir returns the network-shortcuts container directory.
func (p *Paths) ShortcutsDir() string {
	return p.shortcutsDir
}

// UsedFallback reports whether the directory is a stand-in fixture
// rather than a real shell shortcuts folder. Callers use this to warn
// once instead of silently enumerating an empty directory.
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
