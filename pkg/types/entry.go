package types

import (
	"path/filepath"
	"strings"
)

// LinkExt is the file extension of shell link files.
const LinkExt = ".lnk"

// ShortcutEntry is a single entry inside the network-shortcuts
// container. Folder-style entries hold their link in a nested target
// file; flat entries are link files themselves.
type ShortcutEntry struct {
	// Dir is the container directory holding the entry.
	Dir string

	// Name is the entry name within the container.
	Name string

	// IsDir reports whether the entry is a folder-style location.
	IsDir bool
}

// Path returns the full path of the entry on disk.
func (e *ShortcutEntry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// Label returns the display name of the entry: the bare name for
// folder entries, the name with the link extension trimmed for flat
// link files.
func (e *ShortcutEntry) Label() string {
	if e.IsDir {
		return e.Name
	}
	if strings.EqualFold(filepath.Ext(e.Name), LinkExt) {
		return e.Name[:len(e.Name)-len(LinkExt)]
	}
	return e.Name
}
