// Package format provides decoders that turn raw bundle files into a bundle.Dictionary.
//
// Supported formats:
//   - properties: Java style .properties files (github.com/magiconair/properties).
//     Line continuations, unicode escapes and comments are handled by the parser,
//     ${key} expansion is disabled so values are returned verbatim.
//   - env: dotenv files (github.com/joho/godotenv)
//   - yaml: flat YAML mappings (gopkg.in/yaml.v3)
//   - json: flat JSON objects (encoding/json)
//
// YAML and JSON values must be scalars. Numbers and booleans are converted to
// their string form with github.com/spf13/cast, null becomes the empty string.
//
// All decoders report input they cannot decode with an error of code
// bundle.RetCMalformedResource. Use ByName to look up a decoder from configuration.
package format
