package genconfig

import (
	"os"
	"path/filepath"

	"github.com/kn327/NetworkLocationInfo/pkg/config"
	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/logging"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
)

// Options defines the options for the Run command.
type Options struct {
	// Effective renders the resolved configuration instead of the
	// commented defaults.
	Effective bool
	// Write saves the content to the user config path instead of just
	// returning it. An existing file is never overwritten.
	Write bool
}

// Run generates configuration content: the commented defaults, or with
// Effective the configuration currently in force.
func Run(opts Options) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.Content()
	if opts.Effective {
		rendered, err := config.Render(config.Get())
		if err != nil {
			return nil, err
		}
		content = rendered
	}

	result := &types.GenConfigResult{Content: content}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	path := config.FilePath()
	result.Path = path

	if _, err := os.Stat(path); err == nil {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrIOFailure, "cannot create config directory").
			WithDetail("path", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, errors.Wrap(err, errors.ErrIOFailure, "cannot write config file").
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	result.Written = true
	return result, nil
}
