package types

import (
	"path/filepath"
	"strings"
)

// Record is the flat serialization form of a Location: plain string
// fields only, so it can cross process boundaries as JSON or YAML
// without dragging live state along.
type Record struct {
	ShareName     string `json:"ShareName" yaml:"ShareName" toml:"ShareName"`
	ServerName    string `json:"ServerName" yaml:"ServerName" toml:"ServerName"`
	RootDirectory string `json:"RootDirectory" yaml:"RootDirectory" toml:"RootDirectory"`
	ShortcutFile  string `json:"ShortcutFile" yaml:"ShortcutFile" toml:"ShortcutFile"`
}

// Record externalizes the location. RootDirectory is always the
// canonical root path; ShortcutFile is filled only when the shortcut
// entry has been resolved.
func (l *Location) Record() Record {
	rec := Record{
		ShareName:     l.ShareName,
		ServerName:    l.ServerName,
		RootDirectory: l.Name(),
	}
	if entry, ok := l.Entry(); ok && entry != nil {
		rec.ShortcutFile = entry.Path()
	}
	return rec
}

// FromRecord reconstructs a location from its flat record. A non-empty
// ShortcutFile seeds the entry cache, so the rebuilt identity does not
// trigger a fresh container scan. Entries named like link files are
// restored as flat links; everything else as folder entries.
func FromRecord(rec Record) (*Location, error) {
	loc, err := NewLocation(rec.ServerName, rec.ShareName)
	if err != nil {
		return nil, err
	}
	if rec.ShortcutFile != "" {
		dir, name := filepath.Split(rec.ShortcutFile)
		loc.SetEntry(&ShortcutEntry{
			Dir:   filepath.Clean(dir),
			Name:  name,
			IsDir: !strings.EqualFold(filepath.Ext(name), LinkExt),
		})
	}
	return loc, nil
}
