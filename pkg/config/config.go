package config

// Config is the resolved runtime configuration.
type Config struct {
	Shortcuts Shortcuts `koanf:"shortcuts" toml:"shortcuts"`
	Output    Output    `koanf:"output" toml:"output"`
	Logging   Logging   `koanf:"logging" toml:"logging"`
}

// Shortcuts configures where the network-shortcuts container lives.
type Shortcuts struct {
	// Dir overrides the container directory. Empty means the platform
	// default.
	Dir string `koanf:"dir" toml:"dir"`
}

// Output configures how command results are rendered.
type Output struct {
	// Format is one of auto, terminal, text, json, yaml.
	Format string `koanf:"format" toml:"format"`

	// Color enables styled terminal output.
	Color bool `koanf:"color" toml:"color"`
}

// Logging configures diagnostics.
type Logging struct {
	// Verbosity matches the -v flag: 0 warnings, 1 info, 2 debug,
	// 3 and up trace.
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}
