package paths

import (
	"strings"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
)

// ValidateLabel ensures a label is usable as a shortcut entry name.
// Labels must:
// - Not be empty or blank
// - Not contain path separators
// - Not be reserved names (. or ..)
// - Not contain characters Windows forbids in file names
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New(errors.ErrInvalidInput, "label cannot be empty")
	}

	if strings.ContainsAny(label, "/\\") {
		return errors.New(errors.ErrInvalidInput, "label cannot contain path separators")
	}

	if label == "." || label == ".." {
		return errors.New(errors.ErrInvalidInput, "label cannot be '.' or '..'")
	}

	invalidChars := ":*?\"<>|"
	if strings.ContainsAny(label, invalidChars) {
		return errors.Newf(errors.ErrInvalidInput,
			"label contains invalid characters: %s", invalidChars)
	}

	for _, r := range label {
		if r < 32 {
			return errors.New(errors.ErrInvalidInput,
				"label contains control characters")
		}
	}

	return nil
}
