// Package config loads the runtime configuration from layered sources:
// embedded defaults, the user config file, NETLOC_* environment
// variables, and explicit overrides, each layer winning over the one
// before it.
package config
