package locations

import (
	"github.com/kn327/NetworkLocationInfo/pkg/logging"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
	"github.com/kn327/NetworkLocationInfo/pkg/unc"
)

// All returns every network location discoverable in the container:
// entries whose resolved link target parses as a UNC path. Entries
// that cannot be resolved, or whose target is not a network path, are
// skipped with a log line. An unreadable or missing container yields
// an empty slice, never nil.
func (r *Resolver) All() []*types.Location {
	done := logging.LogOperationStart(r.log, "enumerate-locations")
	defer done()

	locs := make([]*types.Location, 0)

	entries, err := r.fs.ReadDir(r.dir)
	if err != nil {
		r.log.Warn().Err(err).Str("dir", r.dir).Msg("Cannot read shortcuts container")
		return locs
	}

	for _, entry := range entries {
		target, err := r.links.ResolveTarget(r.dir, entry.Name())
		if err != nil {
			r.log.Debug().Err(err).
				Str("entry", entry.Name()).
				Msg("Skipping entry, link resolution failed")
			continue
		}
		if target == "" {
			continue
		}

		server, share, err := unc.Parse(target)
		if err != nil {
			r.log.Debug().
				Str("entry", entry.Name()).
				Str("target", target).
				Msg("Skipping entry, target is not a network path")
			continue
		}

		loc, err := types.NewLocation(server, share)
		if err != nil {
			continue
		}
		loc.SetEntry(&types.ShortcutEntry{Dir: r.dir, Name: entry.Name(), IsDir: entry.IsDir()})
		locs = append(locs, loc)
	}

	r.log.Debug().Int("count", len(locs)).Msg("Enumerated network locations")
	return locs
}
