// Package source provides the raw byte sources behind file based dictionary loaders.
//
// An ISource knows how to fetch a file by its slash separated name; it does not
// know anything about formats or locales (see the loader and format packages).
// Three implementations are provided:
//
//   - NewFSSource / NewOSSource: one or more directories of an afero.Fs. The
//     directories form a search path, the first directory that contains a file
//     wins. Tests use afero.NewMemMapFs().
//   - NewS3Source: objects below a key prefix of an S3 bucket (aws-sdk-go-v2).
//   - NewAzureBlobSource: blobs below a name prefix of an Azure Blob Storage container.
//
// The object store sources depend on small interfaces (S3API, AzureBlobAPI) that
// the real SDK clients satisfy, so they can be exercised against fakes.
//
// A missing file is always reported with an error matching bundle.ErrResourceNotFound,
// any other failure with code bundle.RetCInternalError.
package source
