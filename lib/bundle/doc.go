// Package bundle provides the shared vocabulary for resource dictionaries:
// the Dictionary type, the ILoader interface through which dictionaries are
// resolved by name, the Error type with its return codes, and the locale
// fallback rules used by file and object-store backed loaders.
//
// The package focuses on:
//   - A single interface (ILoader) that hides where a dictionary comes from
//   - Structured errors that can be matched with errors.Is
//   - Java ResourceBundle style locale candidates (name_lang_REGION, name_lang, name)
//
// Key Components:
//
//   - Dictionary: A read-only map from case-sensitive key to value. Loaders always
//     return a fresh Dictionary, so callers never observe shared state.
//
//   - ILoader: Resolves an opaque identifier to a Dictionary. A missing dictionary
//     is reported with code RetCResourceNotFound, an empty identifier with
//     RetCInvalidArgument.
//
//   - Error System: Error carries a RetCode, a message and an optional cause.
//     The sentinels ErrInvalidArgument, ErrResourceNotFound and ErrMalformedResource
//     match any Error with the same code:
//
//     if errors.Is(err, bundle.ErrResourceNotFound) { ... }
//
//   - Candidates: Computes the list of bundle names to consult for a locale.
//     Loaders merge the candidates parent first, so the most specific bundle wins.
//
// Related Packages:
//
//   - format (github.com/ValentinKolb/rbundle/lib/bundle/format): decoders for
//     properties, dotenv, YAML and JSON files
//   - source (github.com/ValentinKolb/rbundle/lib/bundle/source): raw byte sources
//     (local or in-memory filesystem, S3, Azure Blob Storage)
//   - loader (github.com/ValentinKolb/rbundle/lib/bundle/loader): ILoader implementations
//   - testing (github.com/ValentinKolb/rbundle/lib/bundle/testing): a conformance
//     suite every ILoader implementation is expected to pass
package bundle
