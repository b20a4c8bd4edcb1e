package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
)

// Content returns the embedded defaults with every value commented
// out, the starting point for a user config file.
func Content() string {
	return commentOutValues(string(defaultConfig))
}

// Render serializes cfg as TOML in the shape of the user config file,
// used to show the effective configuration.
func Render(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render configuration")
	}
	return string(out), nil
}

// commentOutValues comments out every assignment line, keeping
// comments, blank lines, and section headers as they are.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
