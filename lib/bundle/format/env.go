package format

import (
	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/joho/godotenv"
)

// NewEnvDecoder creates a new decoder for dotenv files (KEY=value, one per line).
func NewEnvDecoder() IDecoder {
	return &envDecoderImpl{}
}

// envDecoderImpl implements the IDecoder interface using godotenv
type envDecoderImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see format.IDecoder)
// --------------------------------------------------------------------------

func (e envDecoderImpl) Name() string { return "env" }

func (e envDecoderImpl) Extension() string { return ".env" }

func (e envDecoderImpl) Decode(b []byte) (bundle.Dictionary, error) {
	m, err := godotenv.Unmarshal(string(b))
	if err != nil {
		return nil, malformed(e.Name(), err)
	}
	return m, nil
}
