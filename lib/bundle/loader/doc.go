// Package loader provides the bundle.ILoader implementations of this module.
//
//   - MemoryLoader: a registry of named dictionaries kept in an xsync.MapOf.
//     Useful for tests, for dictionaries built at runtime and as the backing
//     store of embedded defaults. Load always returns a copy.
//
//   - SourceLoader: reads <name><ext> files from a source.ISource (local
//     directories, S3, Azure Blob Storage) and decodes them with a format.IDecoder.
//     Locale candidates (name_lang_REGION, name_lang, name) are merged parent first,
//     mirroring the fallback rules of Java resource bundles.
//
// Neither loader caches: every Load call reads the dictionary again. Both pass
// the conformance suite in github.com/ValentinKolb/rbundle/lib/bundle/testing.
package loader
