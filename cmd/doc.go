// Package cmd implements the command-line interface of rbundle. It reads
// resource bundles through the configured source and format and prints their
// indexed entries.
//
// The package is organized into several subpackages:
//
//   - bundle: Commands operating on a single bundle (each, array, keys, info)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// All flags can also be set through environment variables with the RBUNDLE_
// prefix (e.g. RBUNDLE_SOURCE=s3://bundles/app). .env and .env.local files in
// the working directory are loaded first.
//
// See rbundle -help for a list of all commands.
package cmd
