package status

import (
	"github.com/kn327/NetworkLocationInfo/pkg/commands/internal"
	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/logging"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
)

// Options defines the options for the Check command.
type Options struct {
	// Paths are the UNC paths to check. At least one is required.
	Paths []string
	// ShortcutsDir overrides the network-shortcuts container directory.
	// Empty means the configured or platform default.
	ShortcutsDir string
	// FileSystem is the filesystem to check against. Nil means the OS.
	FileSystem types.FS
	// Links resolves shell link targets. Nil means the platform default.
	Links types.LinkResolver
}

// Check resolves each requested UNC path and reports its live state:
// whether the share is reachable and whether a shortcut entry maps it.
// Paths that do not parse become error rows rather than failing the
// whole command.
func Check(opts Options) (*types.StatusResult, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "Check").Strs("paths", opts.Paths).Msg("Executing command")

	if len(opts.Paths) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one UNC path is required")
	}

	session, err := internal.NewSession(opts.FileSystem, opts.Links, opts.ShortcutsDir)
	if err != nil {
		return nil, err
	}

	result := &types.StatusResult{
		Rows: make([]types.StatusRow, 0, len(opts.Paths)),
	}

	for _, path := range opts.Paths {
		row := types.StatusRow{Path: path}

		loc, err := session.Resolver.FromUNC(path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("Path did not parse")
			row.Error = err.Error()
			result.Failed++
		} else {
			info := session.Resolver.Info(loc)
			row.Location = &info
		}

		result.Rows = append(result.Rows, row)
	}

	log.Info().
		Str("command", "Check").
		Int("rows", len(result.Rows)).
		Int("failed", result.Failed).
		Msg("Command finished")
	return result, nil
}
