// pkg/paths/validation_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test label validation rules

package paths_test

import (
	"testing"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{"simple label", "Projects", false},
		{"label with spaces", "Team Projects", false},
		{"placeholder style label", "projects (fileserver)", false},
		{"unicode label", "Fotoarchiv über NAS", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"forward slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"colon", "a:b", true},
		{"asterisk", "a*b", true},
		{"question mark", "a?b", true},
		{"quote", `a"b`, true},
		{"angle brackets", "a<b>", true},
		{"pipe", "a|b", true},
		{"control character", "a\x01b", true},
		{"tab", "a\tb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := paths.ValidateLabel(tt.label)

			if tt.wantErr {
				assert.True(t, errors.IsCode(err, errors.ErrInvalidInput),
					"ValidateLabel(%q) = %v, want INVALID_INPUT", tt.label, err)
			} else {
				assert.NoError(t, err, "ValidateLabel(%q)", tt.label)
			}
		})
	}
}
