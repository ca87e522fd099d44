package format

import (
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// NewYAMLDecoder creates a new decoder for flat YAML mappings.
// Scalar values are converted to strings, nested mappings and sequences are rejected.
func NewYAMLDecoder() IDecoder {
	return &structuredDecoderImpl{
		name:      "yaml",
		extension: ".yaml",
		unmarshal: yaml.Unmarshal,
	}
}

// NewJSONDecoder creates a new decoder for flat JSON objects.
// Scalar values are converted to strings, nested objects and arrays are rejected.
func NewJSONDecoder() IDecoder {
	return &structuredDecoderImpl{
		name:      "json",
		extension: ".json",
		unmarshal: json.Unmarshal,
	}
}

// structuredDecoderImpl implements the IDecoder interface for formats that decode into a generic map
type structuredDecoderImpl struct {
	name      string
	extension string
	unmarshal func(b []byte, v any) error
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.IDecoder)
// --------------------------------------------------------------------------

func (s *structuredDecoderImpl) Name() string { return s.name }

func (s *structuredDecoderImpl) Extension() string { return s.extension }

func (s *structuredDecoderImpl) Decode(b []byte) (bundle.Dictionary, error) {
	var raw map[string]any
	if err := s.unmarshal(b, &raw); err != nil {
		return nil, malformed(s.name, err)
	}

	dict := make(bundle.Dictionary, len(raw))
	for key, value := range raw {
		switch value.(type) {
		case map[string]any, []any:
			return nil, malformed(s.name, fmt.Errorf("value of key %q is not a scalar", key))
		case nil:
			dict[key] = ""
			continue
		}
		str, err := cast.ToStringE(value)
		if err != nil {
			return nil, malformed(s.name, fmt.Errorf("key %q: %w", key, err))
		}
		dict[key] = str
	}
	return dict, nil
}
