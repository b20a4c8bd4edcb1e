//go:build !windows

package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// defaultShortcutsDir returns a fixture directory under the XDG data
// home. There is no shell shortcuts folder to discover off Windows, so
// this is always a fallback.
func defaultShortcutsDir() (string, bool, error) {
	return filepath.Join(xdg.DataHome, "netloc", "shortcuts"), true, nil
}
