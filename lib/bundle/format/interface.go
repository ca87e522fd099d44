package format

import (
	"fmt"

	"github.com/ValentinKolb/rbundle/lib/bundle"
)

// IDecoder is the interface for all dictionary decoders.
type IDecoder interface {
	// Name returns the short name of the format (e.g. "properties")
	Name() string
	// Extension returns the file extension including the leading dot (e.g. ".properties")
	Extension() string
	// Decode decodes raw bytes into a dictionary.
	// It returns an error with code bundle.RetCMalformedResource if the input cannot be decoded.
	Decode(b []byte) (bundle.Dictionary, error)
}

// decoders maps format names (and aliases) to their factory functions
var decoders = map[string]func() IDecoder{
	"properties": NewPropertiesDecoder,
	"props":      NewPropertiesDecoder,
	"env":        NewEnvDecoder,
	"dotenv":     NewEnvDecoder,
	"yaml":       NewYAMLDecoder,
	"yml":        NewYAMLDecoder,
	"json":       NewJSONDecoder,
}

// ByName returns the decoder registered for the given format name.
func ByName(name string) (IDecoder, error) {
	factory, ok := decoders[name]
	if !ok {
		return nil, bundle.NewError(bundle.RetCInvalidArgument, fmt.Sprintf("invalid format %s (expected one of: properties, env, yaml, json)", name))
	}
	return factory(), nil
}

// malformed wraps a decoding error
func malformed(format string, err error) error {
	return bundle.WrapError(bundle.RetCMalformedResource, "decoding "+format, err)
}
