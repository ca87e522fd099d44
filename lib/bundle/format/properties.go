package format

import (
	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/magiconair/properties"
)

// NewPropertiesDecoder creates a new decoder for Java style .properties files.
// Property expansion (${key}) is disabled, values are returned verbatim.
func NewPropertiesDecoder() IDecoder {
	return &propertiesDecoderImpl{
		loader: &properties.Loader{
			Encoding:         properties.UTF8,
			DisableExpansion: true,
		},
	}
}

// propertiesDecoderImpl implements the IDecoder interface using magiconair/properties
type propertiesDecoderImpl struct {
	loader *properties.Loader
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.IDecoder)
// --------------------------------------------------------------------------

func (p *propertiesDecoderImpl) Name() string { return "properties" }

func (p *propertiesDecoderImpl) Extension() string { return ".properties" }

func (p *propertiesDecoderImpl) Decode(b []byte) (bundle.Dictionary, error) {
	props, err := p.loader.LoadBytes(b)
	if err != nil {
		return nil, malformed(p.Name(), err)
	}
	return props.Map(), nil
}
