package label

import (
	"github.com/kn327/NetworkLocationInfo/pkg/commands/internal"
	"github.com/kn327/NetworkLocationInfo/pkg/logging"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
)

// Options defines the options for the Run command.
type Options struct {
	// Path is the UNC path of the location.
	Path string
	// NewLabel is the label to rename the shortcut entry to. Empty
	// means read-only: report the current label and change nothing.
	NewLabel string
	// ShortcutsDir overrides the network-shortcuts container directory.
	// Empty means the configured or platform default.
	ShortcutsDir string
	// FileSystem is the filesystem to operate on. Nil means the OS.
	FileSystem types.FS
	// Links resolves shell link targets. Nil means the platform default.
	Links types.LinkResolver
}

// Run reads or renames the label of a location's shortcut entry. A
// location with no entry on disk yields NOT_FOUND; asking for the
// label the entry already has is a successful no-op.
func Run(opts Options) (*types.LabelResult, error) {
	log := logging.GetLogger("commands.label")
	log.Debug().
		Str("command", "Label").
		Str("path", opts.Path).
		Str("newLabel", opts.NewLabel).
		Msg("Executing command")

	session, err := internal.NewSession(opts.FileSystem, opts.Links, opts.ShortcutsDir)
	if err != nil {
		return nil, err
	}

	loc, err := session.Resolver.FromUNC(opts.Path)
	if err != nil {
		return nil, err
	}

	oldLabel, err := session.Resolver.Label(loc)
	if err != nil {
		return nil, err
	}

	result := &types.LabelResult{
		Path:     loc.Name(),
		OldLabel: oldLabel,
	}

	if opts.NewLabel != "" && opts.NewLabel != oldLabel {
		if err := session.Resolver.SetLabel(loc, opts.NewLabel); err != nil {
			return nil, err
		}
		result.NewLabel = opts.NewLabel
		result.Renamed = true
	}

	log.Info().
		Str("command", "Label").
		Str("path", result.Path).
		Bool("renamed", result.Renamed).
		Msg("Command finished")
	return result, nil
}
