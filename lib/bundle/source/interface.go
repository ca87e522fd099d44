package source

import (
	"context"
	"path"
	"strings"

	"github.com/ValentinKolb/rbundle/lib/bundle"
)

// ISource provides the raw bytes of bundle files.
type ISource interface {
	// Fetch returns the content of the file at the given slash separated path.
	// If the file does not exist, the returned error matches bundle.ErrResourceNotFound.
	Fetch(ctx context.Context, name string) (b []byte, err error)

	// String returns a human-readable location of the source (e.g. "s3://bucket/prefix")
	String() string
}

// notFound creates the error returned by all sources for missing files
func notFound(location string, err error) error {
	return bundle.WrapError(bundle.RetCResourceNotFound, "no such file "+location, err)
}

// joinKey joins an object key prefix and a file name
func joinKey(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
