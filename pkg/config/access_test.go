// Test Type: Unit Test
// Description: Tests for the config package - global configuration access functions

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kn327/NetworkLocationInfo/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Empty(t, cfg.Shortcuts.Dir)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
}

func TestInitializeAndGet(t *testing.T) {
	custom := config.Default()
	custom.Output.Format = "json"
	config.Initialize(custom)

	assert.Equal(t, "json", config.Get().Output.Format)

	config.Initialize(nil)
	assert.Equal(t, "auto", config.Get().Output.Format, "nil resets to defaults")
}
