package source

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/spf13/afero"
)

// NewFSSource creates a source that reads files from the given directories of an afero.Fs.
// The directories are searched in order, the first one containing the file wins.
// Without directories, the root of the file system ("." for relative lookups) is used.
func NewFSSource(fsys afero.Fs, dirs ...string) ISource {
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	return &fsSourceImpl{
		fs:   fsys,
		dirs: dirs,
	}
}

// NewOSSource creates a source that reads files from the given directories of the local file system.
func NewOSSource(dirs ...string) ISource {
	return NewFSSource(afero.NewOsFs(), dirs...)
}

type fsSourceImpl struct {
	fs   afero.Fs
	dirs []string
}

// --------------------------------------------------------------------------
// Interface Methods (docu see source.ISource)
// --------------------------------------------------------------------------

func (s *fsSourceImpl) Fetch(ctx context.Context, name string) ([]byte, error) {
	for _, dir := range s.dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := filepath.Join(dir, filepath.FromSlash(name))
		b, err := afero.ReadFile(s.fs, p)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, bundle.WrapError(bundle.RetCInternalError, "reading "+p, err)
		}
	}
	return nil, notFound(name+" in "+s.String(), nil)
}

func (s *fsSourceImpl) String() string {
	return strings.Join(s.dirs, string(filepath.ListSeparator))
}
