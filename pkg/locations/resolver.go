package locations

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/logging"
	"github.com/kn327/NetworkLocationInfo/pkg/paths"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
	"github.com/kn327/NetworkLocationInfo/pkg/unc"
)

// Resolver resolves network locations against one shortcuts container
// directory. It reports live reachability of the share, finds the
// shortcut entry that points at it, reads and renames the entry's
// label, and enumerates every location the container holds.
type Resolver struct {
	fs    types.FS
	links types.LinkResolver
	dir   string
	log   zerolog.Logger
}

// New creates a resolver over the given container directory.
func New(fsys types.FS, links types.LinkResolver, shortcutsDir string) *Resolver {
	return &Resolver{
		fs:    fsys,
		links: links,
		dir:   shortcutsDir,
		log:   logging.GetLogger("locations"),
	}
}

// ShortcutsDir returns the container directory the resolver works
// against.
func (r *Resolver) ShortcutsDir() string {
	return r.dir
}

// FromUNC builds a location identity from a UNC path. Components past
// the share name are ignored.
func (r *Resolver) FromUNC(path string) (*types.Location, error) {
	server, share, err := unc.Parse(path)
	if err != nil {
		return nil, err
	}
	return types.NewLocation(server, share)
}

// Ready reports whether the share's root directory exists right now.
// The answer is never cached; a share can appear or vanish between
// calls.
func (r *Resolver) Ready(loc *types.Location) bool {
	fi, err := r.fs.Stat(loc.Name())
	return err == nil && fi.IsDir()
}

// Mapped reports whether the location's shortcut entry exists on disk.
// Placeholder entries report false until something creates them.
func (r *Resolver) Mapped(loc *types.Location) bool {
	_, err := r.fs.Stat(r.Entry(loc).Path())
	return err == nil
}

// Label returns the display name of the location's shortcut entry.
// A location whose entry does not exist on disk yields NOT_FOUND.
func (r *Resolver) Label(loc *types.Location) (string, error) {
	entry := r.Entry(loc)
	if _, err := r.fs.Stat(entry.Path()); err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "shortcut entry does not exist").
			WithDetail("location", loc.Name()).
			WithDetail("path", entry.Path())
	}
	return entry.Label(), nil
}

// SetLabel renames the location's shortcut entry to the given label.
// Flat link files keep their extension. On success the cached entry is
// repointed at the new name, so the identity keeps resolving without a
// rescan.
func (r *Resolver) SetLabel(loc *types.Location, label string) error {
	if err := paths.ValidateLabel(label); err != nil {
		return err
	}

	entry := r.Entry(loc)
	if _, err := r.fs.Stat(entry.Path()); err != nil {
		return errors.Wrap(err, errors.ErrNotFound, "shortcut entry does not exist").
			WithDetail("location", loc.Name()).
			WithDetail("path", entry.Path())
	}

	newName := label
	if !entry.IsDir && strings.EqualFold(filepath.Ext(entry.Name), types.LinkExt) {
		newName += types.LinkExt
	}
	if newName == entry.Name {
		return nil
	}

	newPath := filepath.Join(entry.Dir, newName)
	if err := r.fs.Rename(entry.Path(), newPath); err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "cannot rename shortcut entry").
			WithDetail("from", entry.Path()).
			WithDetail("to", newPath)
	}

	r.log.Info().
		Str("location", loc.Name()).
		Str("from", entry.Name).
		Str("to", newName).
		Msg("Renamed shortcut entry")

	loc.SetEntry(&types.ShortcutEntry{Dir: entry.Dir, Name: newName, IsDir: entry.IsDir})
	return nil
}

// Entry returns the shortcut entry for loc, resolving it on first use
// by scanning the container for an entry whose link target names the
// location's root path. When nothing matches, the result is a
// placeholder inside the container named "share (server)"; nothing is
// created on disk either way. The outcome is cached on the identity.
func (r *Resolver) Entry(loc *types.Location) *types.ShortcutEntry {
	if entry, ok := loc.Entry(); ok && entry != nil {
		return entry
	}

	entry := r.findEntry(loc)
	if entry == nil {
		entry = &types.ShortcutEntry{
			Dir:   r.dir,
			Name:  fmt.Sprintf("%s (%s)", loc.ShareName, loc.ServerName),
			IsDir: true,
		}
		r.log.Debug().
			Str("location", loc.Name()).
			Str("placeholder", entry.Name).
			Msg("No shortcut entry found, using placeholder")
	}

	loc.SetEntry(entry)
	return entry
}

// Info builds the display snapshot for a location: its record plus the
// live reachability and mapping state.
func (r *Resolver) Info(loc *types.Location) types.LocationInfo {
	entry := r.Entry(loc)
	info := types.LocationInfo{
		Record:   loc.Record(),
		IsReady:  r.Ready(loc),
		IsMapped: r.Mapped(loc),
	}
	if info.IsMapped {
		info.ShareLabel = entry.Label()
	}
	return info
}

// findEntry scans the container for the first entry whose resolved
// link target names the location's root path. Entries that cannot be
// resolved are skipped.
func (r *Resolver) findEntry(loc *types.Location) *types.ShortcutEntry {
	entries, err := r.fs.ReadDir(r.dir)
	if err != nil {
		r.log.Debug().Err(err).Str("dir", r.dir).Msg("Cannot read shortcuts container")
		return nil
	}

	for _, entry := range entries {
		target, err := r.links.ResolveTarget(r.dir, entry.Name())
		if err != nil || target == "" {
			continue
		}
		if unc.EqualFold(target, loc.Name()) {
			return &types.ShortcutEntry{Dir: r.dir, Name: entry.Name(), IsDir: entry.IsDir()}
		}
	}
	return nil
}
