package loader

import (
	"context"
	"errors"
	"strings"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/ValentinKolb/rbundle/lib/bundle/format"
	"github.com/ValentinKolb/rbundle/lib/bundle/source"
	"github.com/lni/dragonboat/v4/logger"
	"golang.org/x/text/language"
)

// SourceOptions configures a SourceLoader
type SourceOptions struct {
	Locale language.Tag   // Locale used to build the candidate chain (language.Und = base bundle only)
	Logger logger.ILogger // Logger for resolution details (nil = no logging)
}

// SourceLoader is an ILoader that reads bundle files from an ISource and decodes them with an IDecoder.
//
// For a name and locale, every candidate returned by bundle.Candidates is fetched as
// <candidate><decoder extension>. Found candidates are merged parent first, so keys
// of a more specific bundle override keys of its parents. If no candidate exists,
// Load fails with code bundle.RetCResourceNotFound.
//
// Thread-safety: Load is thread-safe if the underlying source is.
type SourceLoader struct {
	src     source.ISource
	decoder format.IDecoder
	locale  language.Tag
	log     logger.ILogger
}

// NewSourceLoader creates a new SourceLoader with the specified options (optional)
func NewSourceLoader(src source.ISource, decoder format.IDecoder, opts *SourceOptions) (*SourceLoader, error) {
	if src == nil || decoder == nil {
		return nil, bundle.NewError(bundle.RetCInvalidArgument, "source and decoder are required")
	}
	if opts == nil {
		opts = &SourceOptions{}
	}
	return &SourceLoader{
		src:     src,
		decoder: decoder,
		locale:  opts.Locale,
		log:     opts.Logger,
	}, nil
}

// Load resolves and merges the candidate files for name.
func (l *SourceLoader) Load(ctx context.Context, name string) (bundle.Dictionary, error) {
	if strings.TrimSpace(name) == "" {
		return nil, bundle.NewError(bundle.RetCInvalidArgument, "dictionary name must not be empty")
	}

	candidates := bundle.Candidates(name, l.locale)

	// fetch from the most specific to the base bundle, merge in reverse
	found := make([]bundle.Dictionary, 0, len(candidates))
	for _, candidate := range candidates {
		file := candidate + l.decoder.Extension()
		b, err := l.src.Fetch(ctx, file)
		if errors.Is(err, bundle.ErrResourceNotFound) {
			l.debugf("candidate %s not found in %s", file, l.src)
			continue
		}
		if err != nil {
			return nil, err
		}

		dict, err := l.decoder.Decode(b)
		if err != nil {
			return nil, bundle.WrapError(bundle.RetCMalformedResource, "decoding "+file, err)
		}
		l.debugf("loaded %s from %s (%d keys)", file, l.src, len(dict))
		found = append(found, dict)
	}

	if len(found) == 0 {
		return nil, bundle.NewError(bundle.RetCResourceNotFound, "no bundle "+name+" ("+strings.Join(candidates, ", ")+") in "+l.src.String())
	}

	merged := make(bundle.Dictionary)
	for i := len(found) - 1; i >= 0; i-- {
		for k, v := range found[i] {
			merged[k] = v
		}
	}
	return merged, nil
}

// String returns the location and format of the loader
func (l *SourceLoader) String() string {
	return l.src.String() + " (" + l.decoder.Name() + ")"
}

func (l *SourceLoader) debugf(format string, args ...interface{}) {
	if l.log != nil {
		l.log.Debugf(format, args...)
	}
}
