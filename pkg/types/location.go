package types

import (
	"encoding/json"
	"strings"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/unc"
)

// Location identifies a network share by its server and share name.
// Identity is the root path \\server\share, compared case-insensitively;
// two locations built from \\SRV\Docs and \\srv\docs are the same
// location.
//
// The shortcut entry backing a location is resolved at most once and
// cached on the identity. A Location is not safe for concurrent use.
type Location struct {
	ServerName string
	ShareName  string

	entry    *ShortcutEntry
	resolved bool
}

// NewLocation builds a location from its server and share segments.
func NewLocation(server, share string) (*Location, error) {
	if server == "" || share == "" {
		return nil, errors.New(errors.ErrInvalidInput, "server and share names must be non-empty")
	}
	return &Location{ServerName: server, ShareName: share}, nil
}

// Name returns the canonical root path \\server\share.
func (l *Location) Name() string {
	return unc.RootPath(l.ServerName, l.ShareName)
}

// Key returns a case-folded form of the root path, suitable as a map
// key. Locations that compare Equal always share a key.
func (l *Location) Key() string {
	return strings.ToLower(l.Name())
}

// Equal reports whether two locations name the same share, ignoring
// case.
func (l *Location) Equal(other *Location) bool {
	if other == nil {
		return false
	}
	return unc.EqualFold(l.Name(), other.Name())
}

// Entry returns the cached shortcut entry and whether resolution has
// already run for this identity.
func (l *Location) Entry() (*ShortcutEntry, bool) {
	return l.entry, l.resolved
}

// SetEntry records the shortcut entry for this location and marks it
// resolved. Enumeration seeds entries it discovered up front; the
// resolver stores its search result here so later calls reuse it.
func (l *Location) SetEntry(entry *ShortcutEntry) {
	l.entry = entry
	l.resolved = true
}

// String implements fmt.Stringer.
func (l *Location) String() string {
	return l.Name()
}

// MarshalJSON serializes the location through its flat record form.
func (l *Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Record())
}

// UnmarshalJSON reconstructs the location from its flat record form.
func (l *Location) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	loc, err := FromRecord(rec)
	if err != nil {
		return err
	}
	*l = *loc
	return nil
}
