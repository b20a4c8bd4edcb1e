package display

import (
	"encoding/json"
	"io"

	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WriteJSON writes v to w as indented JSON, one document per call.
func WriteJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON output")
	}
	return nil
}

// WriteYAML writes v to w as a YAML document.
func WriteYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		_ = encoder.Close()
		return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML output")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to finish YAML output")
	}
	return nil
}
