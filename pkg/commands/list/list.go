package list

import (
	"github.com/kn327/NetworkLocationInfo/pkg/commands/internal"
	"github.com/kn327/NetworkLocationInfo/pkg/logging"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
)

// Options defines the options for the Locations command.
type Options struct {
	// ShortcutsDir overrides the network-shortcuts container directory.
	// Empty means the configured or platform default.
	ShortcutsDir string
	// FileSystem is the filesystem to enumerate. Nil means the OS.
	FileSystem types.FS
	// Links resolves shell link targets. Nil means the platform default.
	Links types.LinkResolver
}

// Locations enumerates the network-shortcuts container and snapshots
// every network location found in it. Entries that are not network
// locations are skipped; an inaccessible container yields an empty
// result rather than an error.
func Locations(opts Options) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "Locations").Str("shortcutsDir", opts.ShortcutsDir).Msg("Executing command")

	session, err := internal.NewSession(opts.FileSystem, opts.Links, opts.ShortcutsDir)
	if err != nil {
		return nil, err
	}

	locs := session.Resolver.All()

	result := &types.ListResult{
		ShortcutsDir: session.Dir,
		Locations:    make([]types.LocationInfo, len(locs)),
	}
	for i, loc := range locs {
		result.Locations[i] = session.Resolver.Info(loc)
	}

	log.Info().Str("command", "Locations").Int("locationCount", len(result.Locations)).Msg("Command finished")
	return result, nil
}
