//go:build windows

package paths

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// netHoodGUID is the known-folder id of the network-shortcuts folder as
// it appears under User Shell Folders on redirected profiles.
const netHoodGUID = "{C5ABBF53-E17F-4121-8900-86626FC2C973}"

const userShellFolders = `Software\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`

// defaultShortcutsDir reads the NetHood location from the user's shell
// folder registry settings, falling back to the conventional AppData
// path when the registry gives nothing.
func defaultShortcutsDir() (string, bool, error) {
	if dir := registryShortcutsDir(); dir != "" {
		return dir, false, nil
	}

	appData := os.Getenv("APPDATA")
	if appData == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}
		appData = filepath.Join(home, "AppData", "Roaming")
	}
	return filepath.Join(appData, "Microsoft", "Windows", "Network Shortcuts"), false, nil
}

// registryShortcutsDir looks the folder up under User Shell Folders,
// first by its legacy value name, then by its known-folder id. Values
// there are REG_EXPAND_SZ, so environment references get expanded.
func registryShortcutsDir() string {
	k, err := registry.OpenKey(registry.CURRENT_USER, userShellFolders, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	for _, name := range []string{"NetHood", netHoodGUID} {
		val, _, err := k.GetStringValue(name)
		if err != nil || val == "" {
			continue
		}
		if expanded, err := registry.ExpandString(val); err == nil && expanded != "" {
			return expanded
		}
	}
	return ""
}
