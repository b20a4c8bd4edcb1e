package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
)

// EnvPrefix is the prefix of configuration environment variables.
// NETLOC_SHORTCUTS_DIR maps to shortcuts.dir, NETLOC_OUTPUT_FORMAT to
// output.format, and so on.
const EnvPrefix = "NETLOC_"

// Load builds the runtime configuration. Overrides come last and win;
// the CLI passes its flag values through them.
func Load(overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse embedded defaults")
	}

	path := FilePath()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot load config file").
				WithDetail("path", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot load environment variables")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot apply overrides")
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf(&cfg)); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot unmarshal configuration")
	}

	return &cfg, nil
}

// FilePath returns the user config file location, e.g.
// ~/.config/netloc/config.toml.
func FilePath() string {
	return filepath.Join(xdg.ConfigHome, "netloc", "config.toml")
}

// unmarshalConf decodes with weak typing so environment variable
// strings land in int and bool fields.
func unmarshalConf(result *Config) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           result,
			WeaklyTypedInput: true,
		},
	}
}
